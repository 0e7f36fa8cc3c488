// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edla

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/chewxy/math32"
	"github.com/emer/emergent/v2/erand"
	"github.com/emer/emergent/v2/etime"
	"github.com/emer/emergent/v2/timer"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
	"github.com/sourcegraph/conc/pool"
)

// OutNet is the independent network of one output: its weights,
// connectivity mask, activations and diffused error.
type OutNet struct {

	// weights, [NUnits][NUnits] as Recv, Send
	Wts *etensor.Float32

	// connectivity mask, same layout as Wts -- true if the connection exists.
	// Only connections in the mask ever learn.
	Mask []bool `view:"-"`

	// activation state
	Acts Acts `view:"-"`

	// diffused error signal
	Errs ErrSig `view:"-"`
}

// PatternStats are the results of processing one pattern
type PatternStats struct {

	// prediction error (target - output) for each output
	Errs []float32

	// true if any output had an absolute error above ErrThr
	Exceeded bool
}

// edla.Network is the ED learning engine.  It owns all of the state
// for a run: the type vector, and for each output its weights, mask,
// activations and error signals, plus the epoch error counters.
type Network struct {

	// name of the network
	Nm string

	// network dimensions -- set by Config
	Topo Topology `inactive:"+"`

	// structural and learning switches -- set by Config
	Flags Flags `inactive:"+"`

	// activation parameters
	Act ActParams `view:"add-fields"`

	// learning parameters
	Learn LearnParams `view:"add-fields"`

	// weight initialization parameters
	Init InitParams `view:"add-fields"`

	// type sign for each neuron, +1 excitatory, -1 inhibitory
	Types []float32 `view:"-"`

	// one network per output
	Nets []OutNet

	// sum of absolute prediction errors over the current epoch
	ErrTotal float32 `inactive:"+"`

	// number of output errors above ErrThr in the current epoch
	ErrCount int `inactive:"+"`

	// average and max absolute prediction error in the current epoch
	ErrAbs minmax.AvgMax32 `inactive:"+"`

	// trial and epoch counters
	Ctrs Counters

	// number of parallel threads used to process output networks -- 1 or less runs everything in the calling goroutine
	NThreads int

	// seed used for the last InitWts
	Seed int64 `inactive:"+"`

	// optional metadata that is saved in weights files
	MetaData map[string]string

	// filename of last weights file loaded or saved
	WtsFile string

	// timers for each major function
	FunTimes map[string]*timer.Time `view:"-"`

	built bool
}

// NewNetwork returns a new Network with default parameters
func NewNetwork(name string) *Network {
	nt := &Network{}
	nt.Nm = name
	nt.Defaults()
	return nt
}

// InitNetwork configures a new network and initializes its weights from seed
func InitNetwork(name string, tp Topology, fl Flags, ip InitParams, seed int64) (*Network, error) {
	nt := NewNetwork(name)
	nt.Init = ip
	if err := nt.Config(tp, fl); err != nil {
		return nil, err
	}
	nt.InitWts(seed)
	return nt, nil
}

// Defaults sets default parameters
func (nt *Network) Defaults() {
	nt.Flags.Defaults()
	nt.Act.Defaults()
	nt.Learn.Defaults()
	nt.Init.Defaults()
	nt.NThreads = 1
}

// UpdateParams must be called after changing any parameters
func (nt *Network) UpdateParams() {
	nt.Act.Update()
	nt.Learn.Update()
}

// Name returns the network name
func (nt *Network) Name() string { return nt.Nm }

// IsBuilt returns true if Config has succeeded
func (nt *Network) IsBuilt() bool { return nt.built }

// Config validates the topology and parameters and allocates all state.
// Weights are all zero until InitWts is called.
func (nt *Network) Config(tp Topology, fl Flags) error {
	nt.built = false
	if err := tp.Validate(); err != nil {
		return err
	}
	nt.UpdateParams()
	if err := nt.Act.Validate(); err != nil {
		return err
	}
	if err := nt.Learn.Validate(); err != nil {
		return err
	}
	if err := nt.Init.Validate(); err != nil {
		return err
	}
	nt.Topo = tp
	nt.Flags = fl
	nu := tp.NUnits()
	nt.Types = AssignTypes(nu, tp.OutIdx())
	nt.Nets = make([]OutNet, tp.NOutputs)
	for ni := range nt.Nets {
		on := &nt.Nets[ni]
		on.Wts = etensor.NewFloat32([]int{nu, nu}, nil, []string{"Recv", "Send"})
		on.Mask = make([]bool, nu*nu)
		on.Acts.Alloc(nu)
		on.Errs.Alloc(nu)
	}
	nt.FunTimes = make(map[string]*timer.Time)
	nt.built = true
	nt.InitActs()
	nt.ResetCounters()
	return nil
}

// InitWts initializes the weights of every output network from seed,
// and resets activations and counters.  Output networks draw from the same
// random sequence in order.
func (nt *Network) InitWts(seed int64) {
	if !nt.built {
		return
	}
	nt.Seed = seed
	rnd := erand.NewSysRand(seed)
	for ni := range nt.Nets {
		on := &nt.Nets[ni]
		InitWts(&nt.Topo, nt.Types, &nt.Flags, &nt.Init, rnd, on.Wts.Values, on.Mask)
	}
	nt.InitActs()
	nt.ResetCounters()
}

// InitActs clears all activations and error signals
func (nt *Network) InitActs() {
	for ni := range nt.Nets {
		on := &nt.Nets[ni]
		on.Acts.Init(nt.Act.Bias)
		for i := range on.Errs.Ex {
			on.Errs.Ex[i] = 0
			on.Errs.Ih[i] = 0
		}
	}
}

// ResetCounters resets the trial and epoch counters and the epoch errors
func (nt *Network) ResetCounters() {
	nt.Ctrs.Reset()
	nt.ErrTotal = 0
	nt.ErrCount = 0
	nt.ErrAbs.Init()
}

// ResetEpoch starts a new epoch: clears the epoch error counters
// and increments the epoch counter.
func (nt *Network) ResetEpoch() {
	nt.ErrTotal = 0
	nt.ErrCount = 0
	nt.ErrAbs.Init()
	nt.Ctrs.NewEpoch()
}

// EpochErrTotal returns the sum of absolute prediction errors in this epoch
func (nt *Network) EpochErrTotal() float32 { return nt.ErrTotal }

// EpochErrCount returns the number of outputs with errors above ErrThr in this epoch
func (nt *Network) EpochErrCount() int { return nt.ErrCount }

func (nt *Network) checkPattern(inp, trg []float32) error {
	if !nt.built {
		return ErrNotBuilt
	}
	if len(inp) != nt.Topo.NInputs {
		return fmt.Errorf("%w: input has %d values, network has %d inputs", ErrPatternSize, len(inp), nt.Topo.NInputs)
	}
	if len(trg) != nt.Topo.NOutputs {
		return fmt.Errorf("%w: target has %d values, network has %d outputs", ErrPatternSize, len(trg), nt.Topo.NOutputs)
	}
	return nil
}

// TrainPattern runs one learning step on the given input and target pattern:
// Forward, Diffuse, and UpdtWts on every output network.  The prediction
// errors are added to the epoch counters.  Patterns of the wrong size are
// rejected before anything is changed.
func (nt *Network) TrainPattern(inp, trg []float32) (PatternStats, error) {
	if err := nt.checkPattern(inp, trg); err != nil {
		return PatternStats{}, err
	}
	nt.FunTimerStart("TrainPattern")
	nt.Ctrs.Mode = etime.Train
	errs := make([]float32, nt.Topo.NOutputs)
	nt.ThrNetFun(func(ni int, on *OutNet) {
		Forward(&nt.Topo, &nt.Act, on.Wts.Values, inp, nt.Flags.LoopCut, &on.Acts)
		errs[ni] = Diffuse(&nt.Topo, &nt.Learn, &on.Acts, trg[ni], &on.Errs)
		UpdtWts(&nt.Topo, &nt.Learn, nt.Types, &on.Acts, &on.Errs, nt.Flags.Bidir, on.Wts.Values, on.Mask)
	})
	ps := nt.accumErrs(errs)
	nt.Ctrs.TrialInc()
	nt.FunTimerStop("TrainPattern")
	return ps, nil
}

// TestPattern runs the forward pass and computes prediction errors without
// learning, and without adding to the epoch counters.  Activations are
// updated as in training, so without LoopCut they carry over to the next pattern.
func (nt *Network) TestPattern(inp, trg []float32) (PatternStats, error) {
	if err := nt.checkPattern(inp, trg); err != nil {
		return PatternStats{}, err
	}
	nt.Ctrs.Mode = etime.Test
	errs := make([]float32, nt.Topo.NOutputs)
	nt.ThrNetFun(func(ni int, on *OutNet) {
		Forward(&nt.Topo, &nt.Act, on.Wts.Values, inp, nt.Flags.LoopCut, &on.Acts)
		errs[ni] = trg[ni] - on.Acts.Out(&nt.Topo)
	})
	ps := PatternStats{Errs: errs}
	for _, e := range errs {
		if math32.Abs(e) > ErrThr {
			ps.Exceeded = true
		}
	}
	return ps, nil
}

// accumErrs adds prediction errors to the epoch counters in output order
func (nt *Network) accumErrs(errs []float32) PatternStats {
	ps := PatternStats{Errs: errs}
	for ni, e := range errs {
		ae := math32.Abs(e)
		nt.ErrTotal += ae
		nt.ErrAbs.UpdateVal(ae, int32(nt.Ctrs.Trial*len(errs)+ni))
		if ae > ErrThr {
			nt.ErrCount++
			ps.Exceeded = true
		}
	}
	return ps
}

// ThrNetFun calls fun on each output network, using up to NThreads
// goroutines.  Returns when all calls are done.
func (nt *Network) ThrNetFun(fun func(ni int, on *OutNet)) {
	nn := len(nt.Nets)
	if nt.NThreads <= 1 || nn <= 1 {
		for ni := range nt.Nets {
			fun(ni, &nt.Nets[ni])
		}
		return
	}
	p := pool.New().WithMaxGoroutines(nt.NThreads)
	for ni := range nt.Nets {
		ni := ni
		p.Go(func() {
			fun(ni, &nt.Nets[ni])
		})
	}
	p.Wait()
}

// Outputs returns the current output neuron activation of each output network
func (nt *Network) Outputs() []float32 {
	outs := make([]float32, len(nt.Nets))
	for ni := range nt.Nets {
		outs[ni] = nt.Nets[ni].Acts.Out(&nt.Topo)
	}
	return outs
}

// SnapshotWeights returns a copy of all weights as a
// [NOutputs][NUnits][NUnits] (Out, Recv, Send) tensor
func (nt *Network) SnapshotWeights() *etensor.Float32 {
	nu := nt.Topo.NUnits()
	tsr := etensor.NewFloat32([]int{len(nt.Nets), nu, nu}, nil, []string{"Out", "Recv", "Send"})
	sz := nu * nu
	for ni := range nt.Nets {
		copy(tsr.Values[ni*sz:(ni+1)*sz], nt.Nets[ni].Wts.Values)
	}
	return tsr
}

// Wt returns the weight from send to recv in output network ni
func (nt *Network) Wt(ni, recv, send int) float32 {
	return nt.Nets[ni].Wts.Values[recv*nt.Topo.NUnits()+send]
}

// IsConn returns true if send connects to recv in output network ni
func (nt *Network) IsConn(ni, recv, send int) bool {
	return nt.Nets[ni].Mask[recv*nt.Topo.NUnits()+send]
}

// NConns returns the total number of connections across output networks
func (nt *Network) NConns() int {
	n := 0
	for ni := range nt.Nets {
		n += LiveConns(nt.Nets[ni].Mask)
	}
	return n
}

// outNetSizes returns the bytes used by the weights, mask and activation
// state of one output network
func (nt *Network) outNetSizes() (wtsz, masksz, actsz int) {
	nu := nt.Topo.NUnits()
	wtsz = nu * nu * int(unsafe.Sizeof(float32(0)))
	masksz = nu * nu * int(unsafe.Sizeof(false))
	actsz = 4 * nu * int(unsafe.Sizeof(float32(0)))
	return
}

// SizeReport returns a string reporting the size of the network state
func (nt *Network) SizeReport() string {
	var b strings.Builder
	wtsz, masksz, actsz := nt.outNetSizes()
	b.WriteString(fmt.Sprintf("%14s:\t Units: %d\t Conns: %d\t Outputs: %d\n", nt.Nm, nt.Topo.NUnits(), nt.NConns(), len(nt.Nets)))
	b.WriteString(fmt.Sprintf("%14s:\t Wts: %s\t Mask: %s\t Acts: %s\n", "Per Output", datasize.ByteSize(wtsz).HumanReadable(), datasize.ByteSize(masksz).HumanReadable(), datasize.ByteSize(actsz).HumanReadable()))
	b.WriteString(fmt.Sprintf("\n%14s:\t %s\n", "Network Total", datasize.ByteSize(nt.SizeBytes()).HumanReadable()))
	return b.String()
}

// SizeBytes returns the memory used by the weights, masks and activations
func (nt *Network) SizeBytes() int {
	wtsz, masksz, actsz := nt.outNetSizes()
	return len(nt.Nets) * (wtsz + masksz + actsz)
}
