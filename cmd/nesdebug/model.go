package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nesdiag/driver"
	"nesdiag/mos6502"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	breakStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// model is the bubbletea Model for the interactive debugger. The
// command set (breakpoints, step, reset, memory/stack dump) mirrors
// the teacher's BIOS() console menu one-for-one, translated from a
// blocking read-eval loop into tea.Msg-driven state transitions.
type model struct {
	machine     *driver.Machine
	breakpoints map[uint16]struct{}
	lastTrace   mos6502.Trace
	input       string
	log         []string
	running     bool
}

func newModel(m *driver.Machine) model {
	return model{
		machine:     m,
		breakpoints: make(map[uint16]struct{}),
		log:         []string{"nesdebug ready. commands: s)tep r)un b)reak <addr> c)lear e)reset m)em <lo> <hi> t)stack q)uit"},
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		cmd := strings.TrimSpace(m.input)
		if f := strings.Fields(cmd); len(f) > 0 && (strings.EqualFold(f[0], "q") || strings.EqualFold(f[0], "quit")) {
			return m, tea.Quit
		}
		m = m.execute(cmd)
		m.input = ""
		return m, nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	default:
		m.input += keyMsg.String()
		return m, nil
	}
}

func (m model) execute(cmd string) model {
	if cmd == "" {
		return m
	}
	fields := strings.Fields(cmd)
	switch strings.ToLower(fields[0]) {
	case "q", "quit":
		return m
	case "s", "step":
		tr := m.machine.Step()
		m.lastTrace = tr
		m.log = append(m.log, tr.String())
	case "r", "run":
		m = m.runToBreakpoint()
	case "e", "reset":
		m.machine.Reset()
		m.log = append(m.log, "reset")
	case "b", "break":
		if len(fields) < 2 {
			m.log = append(m.log, "usage: b <hex addr>")
			break
		}
		addr, err := strconv.ParseUint(fields[1], 16, 16)
		if err != nil {
			m.log = append(m.log, fmt.Sprintf("bad address %q", fields[1]))
			break
		}
		m.breakpoints[uint16(addr)] = struct{}{}
		m.log = append(m.log, fmt.Sprintf("breakpoint set at $%04X", addr))
	case "c", "clear":
		m.breakpoints = make(map[uint16]struct{})
		m.log = append(m.log, "breakpoints cleared")
	case "m", "mem":
		if len(fields) < 3 {
			m.log = append(m.log, "usage: m <hex lo> <hex hi>")
			break
		}
		m.log = append(m.log, m.dumpMemory(fields[1], fields[2]))
	case "t", "stack":
		m.log = append(m.log, m.dumpStack())
	default:
		m.log = append(m.log, fmt.Sprintf("unknown command %q", fields[0]))
	}
	return m
}

// runToBreakpoint steps until a breakpoint address is reached or a
// hard cap is hit, guarding the interactive session against an
// infinite loop in the loaded ROM.
func (m model) runToBreakpoint() model {
	const stepCap = 5_000_000
	for i := 0; i < stepCap; i++ {
		tr := m.machine.Step()
		m.lastTrace = tr
		if _, hit := m.breakpoints[tr.PC]; hit {
			m.log = append(m.log, fmt.Sprintf("hit breakpoint at $%04X", tr.PC))
			return m
		}
	}
	m.log = append(m.log, "run: step cap reached without hitting a breakpoint")
	return m
}

func (m model) dumpMemory(loHex, hiHex string) string {
	lo, err1 := strconv.ParseUint(loHex, 16, 16)
	hi, err2 := strconv.ParseUint(hiHex, 16, 16)
	if err1 != nil || err2 != nil {
		return "bad address range"
	}
	var sb strings.Builder
	for addr := uint16(lo); ; addr++ {
		sb.WriteString(fmt.Sprintf("$%04X:%02X ", addr, m.machine.Read(addr)))
		if addr == uint16(hi) {
			break
		}
	}
	return sb.String()
}

func (m model) dumpStack() string {
	sp := m.machine.CPU.SP
	var sb strings.Builder
	for i := 0; i < 3; i++ {
		addr := 0x0100 + uint16(sp) + uint16(i) + 1
		if addr > 0x01FF {
			break
		}
		sb.WriteString(fmt.Sprintf("$%04X:%02X ", addr, m.machine.Read(addr)))
	}
	return sb.String()
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("nesdebug") + "\n\n")
	sb.WriteString(fmt.Sprintf("A:%02X X:%02X Y:%02X PC:%04X SP:%02X P:%08b\n",
		m.machine.CPU.A, m.machine.CPU.X, m.machine.CPU.Y, m.machine.CPU.PC, m.machine.CPU.SP, m.machine.CPU.Status))

	if len(m.breakpoints) > 0 {
		var bps []string
		for addr := range m.breakpoints {
			bps = append(bps, fmt.Sprintf("$%04X", addr))
		}
		sb.WriteString(breakStyle.Render("breakpoints: "+strings.Join(bps, " ")) + "\n")
	}

	sb.WriteString("\n")
	start := 0
	if len(m.log) > 10 {
		start = len(m.log) - 10
	}
	for _, line := range m.log[start:] {
		sb.WriteString(dimStyle.Render(line) + "\n")
	}

	sb.WriteString("\n> " + m.input)
	return sb.String()
}
