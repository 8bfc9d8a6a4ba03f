package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"

	"github.com/secretsentry/secretsentry-cli/internal/apperr"
	"github.com/secretsentry/secretsentry-cli/internal/detect"
	"github.com/secretsentry/secretsentry-cli/internal/report"
	"github.com/secretsentry/secretsentry-cli/internal/validation"
)

// findingItem adapts a detect.Finding for display in a bubbles list.
type findingItem struct {
	finding detect.Finding
	masked  string
}

func (i findingItem) Title() string {
	return fmt.Sprintf("%s:%d", i.finding.Path, i.finding.LineNumber)
}

func (i findingItem) Description() string {
	return fmt.Sprintf("%s · %s", i.finding.Kind, i.masked)
}

func (i findingItem) FilterValue() string { return i.finding.LineText }

// findingPickerModel is the Bubble Tea model for browsing findings with
// fuzzy search, grounded on the upstream model selector's search+list
// combination but retargeted at reviewing detected secrets instead of
// picking models.
type findingPickerModel struct {
	textInput textinput.Model
	list      list.Model
	all       []detect.Finding

	copied    string
	quitting  bool
	confirmed bool
	width     int
	height    int
}

// NewFindingPicker builds a picker over findings, letting the user fuzzy
// search by line text and copy a matched secret span to the clipboard
// for rotation before confirming the set has been reviewed.
func NewFindingPicker(findings []detect.Finding) *findingPickerModel {
	ti := textinput.New()
	ti.Placeholder = "Filter findings..."
	ti.Focus()
	ti.SetWidth(50)

	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ColorHighlight).
		BorderForeground(ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ColorTextDim).
		BorderForeground(ColorPrimary)

	items := findingsToItems(findings)
	l := list.New(items, delegate, 0, 0)
	l.Title = "Findings"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)
	l.Styles.Title = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Padding(0, 0, 1, 0)

	return &findingPickerModel{
		textInput: ti,
		list:      l,
		all:       findings,
		width:     80,
		height:    24,
	}
}

func findingsToItems(findings []detect.Finding) []list.Item {
	items := make([]list.Item, len(findings))
	for i, f := range findings {
		items[i] = findingItem{finding: f, masked: report.Mask(f.LineText)}
	}
	return items
}

func (m *findingPickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *findingPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		case "c":
			if i, ok := m.list.SelectedItem().(findingItem); ok {
				if err := clipboard.WriteAll(i.finding.MatchedSpan); err == nil {
					m.copied = i.Title()
				}
			}
			return m, nil
		default:
			if m.textInput.Focused() {
				var cmd tea.Cmd
				m.textInput, cmd = m.textInput.Update(msg)
				m.applyFilter()
				return m, cmd
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *findingPickerModel) applyFilter() {
	filtered := validation.FilterByQuery(m.all, m.textInput.Value())
	m.list.SetItems(findingsToItems(filtered))
}

func (m *findingPickerModel) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	var b strings.Builder
	b.WriteString(Title.Render("Review detected secrets"))
	b.WriteString("\n\n")
	b.WriteString(Dim.Render("Filter: "))
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.list.View())
	b.WriteString("\n\n")
	if m.copied != "" {
		b.WriteString(Success.Render(fmt.Sprintf("copied matched span from %s to clipboard", m.copied)))
		b.WriteString("\n")
	}
	b.WriteString(Dim.Render("c: copy matched span · enter: done reviewing · esc: cancel"))
	return tea.NewView(b.String())
}

// RunFindingPicker launches the interactive finding browser and returns
// once the user confirms they've finished reviewing (enter), or
// apperr.ErrCancelled if they back out (esc/ctrl+c).
func RunFindingPicker(findings []detect.Finding) error {
	p := tea.NewProgram(NewFindingPicker(findings))
	m, err := p.Run()
	if err != nil {
		return err
	}
	model := m.(*findingPickerModel)
	if !model.confirmed {
		return apperr.ErrCancelled
	}
	return nil
}
