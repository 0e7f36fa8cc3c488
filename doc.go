// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package edla is the overall repository for the Error Diffusion learning
algorithm (ED) implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* edla: the core learning engine: one small recurrent network of paired
excitatory and inhibitory neurons per output, trained by diffusing the
output error to every hidden neuron, with weight saving and loading.

* patgen: generates training pattern sets (parity, mirror, random, real,
one-hot or manual targets) and steps through them.

* train: the epoch loop, with convergence checks, epoch statistics and a
YAML run summary.

* prompt: interactive console entry of run parameters and manual targets.

* resultdb: records run results in a MySQL database.

* examples: these actually compile into runnable programs.  examples/edsim
is the place to start: it trains a network on a configurable pattern set.
examples/bench times the training of many networks in parallel.
*/
package edla
