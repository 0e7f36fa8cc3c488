// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edla

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/emer/emergent/v2/weights"
	"github.com/goki/ki/indent"
)

// SaveWtsJSON saves network weights to a JSON-formatted file.
// If filename has .gz extension, then file is gzip compressed.
func (nt *Network) SaveWtsJSON(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	if filepath.Ext(filename) == ".gz" {
		gzr := gzip.NewWriter(fp)
		err = nt.WriteWtsJSON(gzr)
		if cerr := gzr.Close(); err == nil {
			err = cerr
		}
	} else {
		bw := bufio.NewWriter(fp)
		err = nt.WriteWtsJSON(bw)
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
	}
	if err == nil {
		nt.WtsFile = filename
	}
	return err
}

// OpenWtsJSON opens network weights from a JSON-formatted file.
// If filename has .gz extension, then file is gzip uncompressed.
func (nt *Network) OpenWtsJSON(filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	if filepath.Ext(filename) == ".gz" {
		gzr, err := gzip.NewReader(fp)
		if err != nil {
			log.Println(err)
			return err
		}
		defer gzr.Close()
		err = nt.ReadWtsJSON(gzr)
		if err == nil {
			nt.WtsFile = filename
		}
		return err
	}
	err = nt.ReadWtsJSON(bufio.NewReader(fp))
	if err == nil {
		nt.WtsFile = filename
	}
	return err
}

// wtsMetaData returns the metadata recorded in weights files
func (nt *Network) wtsMetaData() map[string]string {
	md := map[string]string{
		"NInputs":  strconv.Itoa(nt.Topo.NInputs),
		"NOutputs": strconv.Itoa(nt.Topo.NOutputs),
		"NHidden1": strconv.Itoa(nt.Topo.NHidden1),
		"NHidden2": strconv.Itoa(nt.Topo.NHidden2),
		"Epoch":    strconv.Itoa(nt.Ctrs.Epoch),
		"Seed":     strconv.FormatInt(nt.Seed, 10),
		"Types":    nt.TypesCode(),
	}
	for k, v := range nt.MetaData {
		md[k] = v
	}
	return md
}

// OutNetName returns the name used for output network ni in weights files
func OutNetName(ni int) string {
	return fmt.Sprintf("Out%d", ni)
}

// WriteWtsJSON writes the weights in the emergent JSON weights format, from
// the receiver-side perspective.  Each output network is written as a layer
// with a single projection from "Units", and each receiving neuron lists only
// its existing connections, so the mask is saved along with the weights.
func (nt *Network) WriteWtsJSON(w io.Writer) error {
	if !nt.built {
		return ErrNotBuilt
	}
	depth := 0
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("{\n"))
	depth++
	w.Write(indent.TabBytes(depth))
	w.Write([]byte(fmt.Sprintf("\"Network\": %q,\n", nt.Nm)))
	w.Write(indent.TabBytes(depth))
	writeMetaData(w, depth, nt.wtsMetaData())
	w.Write([]byte(",\n"))
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("\"Layers\": [\n"))
	depth++
	nn := len(nt.Nets)
	for ni := range nt.Nets {
		nt.writeOutNetJSON(w, depth, ni)
		if ni == nn-1 {
			w.Write([]byte("\n"))
		} else {
			w.Write([]byte(",\n"))
		}
	}
	depth--
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("]\n"))
	depth--
	w.Write(indent.TabBytes(depth))
	_, err := w.Write([]byte("}\n"))
	return err
}

func writeMetaData(w io.Writer, depth int, md map[string]string) {
	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	w.Write([]byte("\"MetaData\": {\n"))
	depth++
	for i, k := range keys {
		w.Write(indent.TabBytes(depth))
		w.Write([]byte(fmt.Sprintf("%q: %q", k, md[k])))
		if i < len(keys)-1 {
			w.Write([]byte(",\n"))
		} else {
			w.Write([]byte("\n"))
		}
	}
	depth--
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("}"))
}

// writeOutNetJSON writes one output network as a layer, leaving it unterminated
func (nt *Network) writeOutNetJSON(w io.Writer, depth int, ni int) {
	on := &nt.Nets[ni]
	nu := nt.Topo.NUnits()
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("{\n"))
	depth++
	w.Write(indent.TabBytes(depth))
	w.Write([]byte(fmt.Sprintf("\"Layer\": %q,\n", OutNetName(ni))))
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("\"Prjns\": [\n"))
	depth++
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("{\n"))
	depth++
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("\"From\": \"Units\",\n"))
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("\"Rs\": [\n"))
	depth++
	for ri := nt.Topo.OutIdx(); ri < nu; ri++ {
		rw := on.Wts.Values[ri*nu : (ri+1)*nu]
		rm := on.Mask[ri*nu : (ri+1)*nu]
		var sis []string
		var wts []string
		for si := range rw {
			if !rm[si] {
				continue
			}
			sis = append(sis, strconv.Itoa(si))
			wts = append(wts, strconv.FormatFloat(float64(rw[si]), 'g', -1, 32))
		}
		w.Write(indent.TabBytes(depth))
		w.Write([]byte("{\n"))
		depth++
		w.Write(indent.TabBytes(depth))
		w.Write([]byte(fmt.Sprintf("\"Ri\": %v,\n", ri)))
		w.Write(indent.TabBytes(depth))
		w.Write([]byte(fmt.Sprintf("\"N\": %v,\n", len(sis))))
		w.Write(indent.TabBytes(depth))
		w.Write([]byte("\"Si\": [ " + strings.Join(sis, ", ") + " ],\n"))
		w.Write(indent.TabBytes(depth))
		w.Write([]byte("\"Wt\": [ " + strings.Join(wts, ", ") + " ]\n"))
		depth--
		w.Write(indent.TabBytes(depth))
		if ri == nu-1 {
			w.Write([]byte("}\n"))
		} else {
			w.Write([]byte("},\n"))
		}
	}
	depth--
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("]\n"))
	depth--
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("}\n"))
	depth--
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("]\n"))
	depth--
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("}"))
}

// ReadWtsJSON reads network weights written by WriteWtsJSON.
// The network must already be configured with the same topology.
func (nt *Network) ReadWtsJSON(r io.Reader) error {
	nw, err := weights.NetReadJSON(r)
	if err != nil {
		return err // note: already logged
	}
	err = nt.SetWts(nw)
	if err != nil {
		log.Println(err)
	}
	return err
}

// SetWts sets the weights and connectivity of this network from
// weights.Network decoded values.  Receiving neurons listed in the file
// get exactly the listed connections.  Everything is checked before any
// weight is changed, so on error the network is left as it was.
func (nt *Network) SetWts(nw *weights.Network) error {
	if !nt.built {
		return ErrNotBuilt
	}
	if err := nt.checkWtsMetaData(nw.MetaData); err != nil {
		return err
	}
	nis, err := nt.checkWtsLayers(nw)
	if err != nil {
		return err
	}
	if nw.Network != "" {
		nt.Nm = nw.Network
	}
	if ep, ok := nw.MetaData["Epoch"]; ok {
		nt.Ctrs.Epoch, _ = strconv.Atoi(ep)
	}
	nu := nt.Topo.NUnits()
	for li := range nw.Layers {
		lw := &nw.Layers[li]
		on := &nt.Nets[nis[li]]
		for pi := range lw.Prjns {
			pw := &lw.Prjns[pi]
			for i := range pw.Rs {
				pr := &pw.Rs[i]
				rw := on.Wts.Values[pr.Ri*nu : (pr.Ri+1)*nu]
				rm := on.Mask[pr.Ri*nu : (pr.Ri+1)*nu]
				for si := range rw {
					rw[si] = 0
					rm[si] = false
				}
				for ci, si := range pr.Si {
					rw[si] = pr.Wt[ci]
					rm[si] = true
				}
			}
		}
	}
	return nil
}

// checkWtsLayers validates every layer, receiver and sender index in nw,
// returning the output network index of each layer
func (nt *Network) checkWtsLayers(nw *weights.Network) ([]int, error) {
	nu := nt.Topo.NUnits()
	nis := make([]int, len(nw.Layers))
	for li := range nw.Layers {
		lw := &nw.Layers[li]
		var ni int
		if _, err := fmt.Sscanf(lw.Layer, "Out%d", &ni); err != nil || ni < 0 || ni >= len(nt.Nets) {
			return nil, fmt.Errorf("edla.SetWts: unknown output network %q", lw.Layer)
		}
		nis[li] = ni
		for pi := range lw.Prjns {
			pw := &lw.Prjns[pi]
			for i := range pw.Rs {
				pr := &pw.Rs[i]
				if pr.Ri < nt.Topo.OutIdx() || pr.Ri >= nu || len(pr.Wt) != len(pr.Si) {
					return nil, fmt.Errorf("edla.SetWts: %s has invalid receiver %d", lw.Layer, pr.Ri)
				}
				for _, si := range pr.Si {
					if si < 0 || si >= nu {
						return nil, fmt.Errorf("edla.SetWts: %s receiver %d has invalid sender %d", lw.Layer, pr.Ri, si)
					}
				}
			}
		}
	}
	return nis, nil
}

// checkWtsMetaData returns an error if the topology recorded
// in md does not match this network
func (nt *Network) checkWtsMetaData(md map[string]string) error {
	chk := []struct {
		key string
		val int
	}{
		{"NInputs", nt.Topo.NInputs},
		{"NOutputs", nt.Topo.NOutputs},
		{"NHidden1", nt.Topo.NHidden1},
		{"NHidden2", nt.Topo.NHidden2},
	}
	for _, c := range chk {
		sv, ok := md[c.key]
		if !ok {
			continue
		}
		v, err := strconv.Atoi(sv)
		if err != nil || v != c.val {
			return fmt.Errorf("edla.SetWts: weights have %s = %s, network has %d", c.key, sv, c.val)
		}
	}
	if tc, ok := md["Types"]; ok && tc != nt.TypesCode() {
		return fmt.Errorf("edla.SetWts: weights have neuron types %s, network has %s", tc, nt.TypesCode())
	}
	return nil
}
