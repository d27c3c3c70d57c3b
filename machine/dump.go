package machine

import (
	"maps"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/regmach/internal"
	"github.com/ezrec/regmach/translate"
)

// Dump renders the register file, status registers, label table and
// memory as text tables.
func (m *Machine) Dump() (text string) {
	regTable := table.NewWriter()
	regTable.SetTitle("Registers")
	regTable.AppendHeader(table.Row{"Register", "Value"})

	status := internal.IterSeq2Pairs(
		[]string{"IP", "TICKS"},
		[]int64{m.Ip, int64(m.Ticks)},
	)
	for name, value := range internal.IterSeq2Concat(m.Registers.All(), status) {
		regTable.AppendRow(table.Row{name, value})
	}
	regTable.AppendFooter(table.Row{"HALTED", m.Halted})

	labelTable := table.NewWriter()
	labelTable.SetTitle("Labels")
	labelTable.AppendHeader(table.Row{"Label", "Address"})
	for _, name := range slices.Sorted(maps.Keys(m.Labels)) {
		labelTable.AppendRow(table.Row{name, m.Labels[name]})
	}

	memTable := table.NewWriter()
	memTable.SetTitle("Memory")
	memTable.AppendHeader(table.Row{"Address", "Kind", "Content"})
	for addr, cell := range m.Memory.All() {
		memTable.AppendRow(table.Row{addr, cell.Kind.String(), cell.String()})
	}

	parts := []string{
		regTable.Render(),
		labelTable.Render(),
		memTable.Render(),
	}

	text = strings.Join(parts, "\n")
	return
}

// Status renders the status registers and cycle count as a text table.
func (m *Machine) Status() (text string) {
	statTable := table.NewWriter()
	statTable.AppendHeader(table.Row{"Status", "Value"})
	statTable.AppendRow(table.Row{"IP", m.Ip})
	statTable.AppendRow(table.Row{"HALTED", m.Halted})
	statTable.AppendRow(table.Row{"ERRORED", m.Errored})
	statTable.AppendRow(table.Row{"TICKS", translate.Number(int64(m.Ticks))})
	statTable.AppendRow(table.Row{"LABELS", len(m.Labels)})

	text = statTable.Render()
	return
}
