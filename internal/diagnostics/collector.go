package diagnostics

import (
	"fmt"
	"io"
)

type Collector struct {
	Diags []*Diag

	// Every reported diag is echoed here when set
	Out io.Writer
}

func New() *Collector {
	return &Collector{
		Diags: nil,
		Out:   nil,
	}
}

func NewWithOutput(out io.Writer) *Collector {
	return &Collector{Out: out}
}

func (collector *Collector) ReportAndSave(diag *Diag) {
	if collector == nil {
		return
	}
	if collector.Out != nil {
		fmt.Fprintln(collector.Out, diag.Message)
	}
	collector.Diags = append(collector.Diags, diag)
}

func (collector *Collector) HasErrors() bool {
	return collector != nil && len(collector.Diags) > 0
}
