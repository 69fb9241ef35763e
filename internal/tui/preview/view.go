package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tint/internal/components"
)

const (
	titleClasses     = "bold text-primary"
	tabClasses       = "px-1 text-muted-foreground"
	activeTabClasses = "px-1 bg-primary text-primary-foreground bold"
	metaClasses      = "text-muted-foreground"
	stageClasses     = "p-1"
)

// View renders the gallery.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	name, value := m.Current()

	var b strings.Builder
	b.WriteString(m.sheet.Style(titleClasses).Render("tint preview"))
	b.WriteString("  ")
	b.WriteString(m.sheet.Style(metaClasses).Render(m.modeLabel()))
	b.WriteString("\n\n")
	b.WriteString(m.tabs())
	b.WriteString("\n\n")

	if name != "" {
		e := m.entries[m.cursor]
		if e.axis != "" {
			b.WriteString(m.sheet.Style(metaClasses).Render(
				fmt.Sprintf("%s: %s (%d/%d)", e.axis, value, m.selected[e.name]+1, len(e.options))))
			b.WriteString("\n")
		}
		b.WriteString(m.sheet.Style(stageClasses).Render(m.renderComponent(name, value)))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) modeLabel() string {
	label := "mode: " + string(m.mode)
	if m.engine != nil {
		effective := "light"
		if m.engine.IsDark(m.mode) {
			effective = "dark"
		}
		label += " (" + effective + ")"
	}
	return label
}

func (m Model) tabs() string {
	tabs := make([]string, 0, len(m.entries))
	for i, e := range m.entries {
		classes := tabClasses
		if i == m.cursor {
			classes = activeTabClasses
		}
		tabs = append(tabs, m.sheet.Style(classes).Render(e.name))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return lipgloss.NewStyle().MaxWidth(m.width).Render(row)
}

func (m Model) renderComponent(name, value string) string {
	sheet := m.sheet
	switch name {
	case "button":
		group := components.NewButtonGroup(
			components.NewButton("Button", components.ButtonOptions{Variant: components.ButtonVariant(value)}).WithStylesheet(sheet),
			components.NewButton("Small", components.ButtonOptions{Variant: components.ButtonVariant(value), Size: components.ButtonSizeSmall}).WithStylesheet(sheet),
			components.NewButton("Large", components.ButtonOptions{Variant: components.ButtonVariant(value), Size: components.ButtonSizeLarge}).WithStylesheet(sheet),
			components.NewButton("Icon", components.ButtonOptions{Variant: components.ButtonVariant(value), Size: components.ButtonSizeIcon, Icon: "★"}).WithStylesheet(sheet),
		)
		return lipgloss.JoinVertical(lipgloss.Left, group.View(), "", m.loading.View())
	case "badge":
		return components.NewBadge("Badge", components.BadgeVariant(value)).WithStylesheet(sheet).View()
	case "alert":
		return components.NewAlert(components.AlertVariant(value), "Heads up!", "You can add components to your app using the cli.").
			WithIcon("!").WithWidth(50).WithStylesheet(sheet).View()
	case "card":
		return components.NewCard(components.CardData{
			Title:       "Create project",
			Description: "Deploy your new project in one-click.",
			Content:     "Name: my-project",
			Footer:      "Cancel  Deploy",
		}).WithWidth(40).WithStylesheet(sheet).View()
	case "checkbox":
		box := components.NewCheckbox("Accept terms and conditions", value == "checked").WithStylesheet(sheet)
		return box.WithDisabled(value == "disabled").View()
	case "dialog":
		return components.NewDialog("Are you absolutely sure?", "This action cannot be undone.").
			WithActions(
				components.NewButton("Cancel", components.ButtonOptions{Variant: components.ButtonVariantOutline}).WithStylesheet(sheet),
				components.NewButton("Continue", components.ButtonOptions{}).WithStylesheet(sheet),
			).WithStylesheet(sheet).View()
	case "header":
		return components.NewHeader("tint", "Docs", "Components", "Themes").
			WithAlign(value).WithWidth(min(m.width, 60)).WithStylesheet(sheet).View()
	case "input":
		return components.NewFormInput("Email", "").
			WithDescription("We'll never share your email.").
			WithStylesheet(sheet).
			View() + "\n" + components.NewInput("").WithPlaceholder("you@example.com").
			WithState(components.InputState(value)).WithStylesheet(sheet).View()
	case "textarea":
		return components.NewTextarea("").WithPlaceholder("Type your message here.").
			WithState(components.InputState(value)).WithStylesheet(sheet).View()
	case "label":
		return components.NewLabel("Your email address").WithDisabled(value == "disabled").WithStylesheet(sheet).View()
	case "section-header":
		return components.NewSectionCard("Section", "A grouped block of settings.", "Content goes here.").
			WithVariant(value).WithIcon("◆").WithWidth(50).WithStylesheet(sheet).View()
	case "select", "select-item":
		return m.renderSelect(name, value)
	case "skeleton":
		return lipgloss.JoinVertical(lipgloss.Left,
			components.NewSkeleton(30, 1).WithStylesheet(sheet).View(),
			components.NewSkeleton(20, 1).WithStylesheet(sheet).View(),
		)
	}
	return ""
}

func (m Model) renderSelect(name, value string) string {
	sel := components.NewSelect("Select a country",
		components.SelectItem{Value: "us", Label: "United States"},
		components.SelectItem{Value: "ca", Label: "Canada"},
		components.SelectItem{Value: "uk", Label: "United Kingdom", Disabled: name == "select-item" && value == "disabled"},
		components.SelectItem{Value: "de", Label: "Germany"},
	).WithWidth(28).WithStylesheet(m.sheet)

	if name == "select" {
		switch components.SelectState(value) {
		case components.SelectStateOpen:
			sel.Open()
		case components.SelectStateDisabled:
			sel.WithDisabled(true)
		case components.SelectStateInvalid:
			sel.WithInvalid(true)
		}
		return sel.View()
	}

	sel.SetValue("ca")
	sel.Open()
	if value == "highlighted" {
		sel.Next()
	}
	return sel.View()
}
