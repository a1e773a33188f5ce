// cmd/modaldump/dump.go
package main

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tamzrod/modal-replicator/internal/modal"
)

type report struct {
	Kind    string   `yaml:"kind"`
	Block   string   `yaml:"block"`
	Records []record `yaml:"records"`
}

type record struct {
	Index     int    `yaml:"index"`
	Label     string `yaml:"label"`
	Mnemonic  string `yaml:"mnemonic,omitempty"`
	Commanded *bool  `yaml:"commanded,omitempty"`
	Raw       *int32 `yaml:"raw,omitempty"`
	Flag1     *uint8 `yaml:"flag1,omitempty"`
	Flag2     *uint8 `yaml:"flag2,omitempty"`
}

// dump classifies the query, decodes data and writes the records as YAML.
func dump(w io.Writer, typ, block int, data []byte) error {
	k, err := modal.Classify(typ, block)
	if err != nil {
		return err
	}

	p, err := modal.ParsePayload(k, modal.Block(block), data)
	if err != nil {
		return err
	}

	res := modal.Decode(k, p)

	rep := report{
		Kind:    k.String(),
		Block:   modal.Block(block).String(),
		Records: make([]record, 0, len(res.Fields)),
	}

	for i, f := range res.Fields {
		r := record{Index: i, Label: modal.Label(k, i)}
		switch v := f.(type) {
		case modal.GCodeField:
			commanded := v.Commanded
			r.Mnemonic = v.Mnemonic
			r.Commanded = &commanded
		case modal.AuxField:
			raw, f1, f2 := v.Raw, v.Flag1, v.Flag2
			r.Raw, r.Flag1, r.Flag2 = &raw, &f1, &f2
		}
		rep.Records = append(rep.Records, r)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}
