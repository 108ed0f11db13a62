// Package dashboard renders the account dashboard shown after onboarding.
package dashboard

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/onboard/internal/onboarding"
	"github.com/raphi011/onboard/internal/ui/styles"
)

const (
	cardWidth = 30
	gap       = 1
)

// Activity is one entry of the recent activity list.
type Activity struct {
	Title string
	When  string
}

// DefaultActivity is shown right after a verification was submitted.
var DefaultActivity = []Activity{
	{Title: "KYC verification submitted", When: "Just now"},
	{Title: "Account created", When: "Today"},
}

// Render renders the dashboard for user. Cards sit side by side when width
// allows, stacked otherwise. A nil user renders without name and email.
func Render(user *onboarding.User, width int) string {
	var name, email string
	if user != nil {
		name, email = user.Name, user.Email
	}

	cards := []string{
		card("Account Status", accountStatus()),
		card("Contact Information", contact(email)),
		card("Quick Actions", quickActions()),
	}

	var row string
	if width <= 0 || width >= len(cards)*(cardWidth+gap) {
		spaced := make([]string, 0, 2*len(cards)-1)
		for i, c := range cards {
			if i > 0 {
				spaced = append(spaced, strings.Repeat(" ", gap))
			}
			spaced = append(spaced, c)
		}
		row = lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
	} else {
		row = lipgloss.JoinVertical(lipgloss.Left, cards...)
	}

	var b strings.Builder
	b.WriteString(styles.HeadingStyle.Render(greeting(name)))
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render("Your account dashboard"))
	b.WriteString("\n\n")
	b.WriteString(row)
	b.WriteString("\n")
	b.WriteString(recentActivity(DefaultActivity, lipgloss.Width(row)))
	b.WriteString("\n")
	return b.String()
}

func greeting(name string) string {
	if name == "" {
		return "Welcome back!"
	}
	return "Welcome back, " + name + "!"
}

func card(title, body string) string {
	return styles.CardStyle.Width(cardWidth).Render(
		styles.HeadingStyle.Render(title) + "\n\n" + body)
}

func accountStatus() string {
	return styles.MutedStyle.Render("Verification Status") + "\n" +
		styles.WarningStyle.Render("◷ Pending") + "\n\n" +
		styles.MutedStyle.Render("Your KYC verification is being reviewed. You'll be notified once complete.")
}

func contact(email string) string {
	line := styles.Checkmark(styles.MutedStyle.Render("Email verified"))
	if email == "" {
		return line
	}
	// border and padding take 4 cells
	if lipgloss.Width(email) > cardWidth-4 {
		return line + "\n" + styles.Truncate(email, cardWidth-4)
	}
	return line + "\n" + styles.FormatEmail(email)
}

func quickActions() string {
	actions := []string{"View Profile", "Security Settings", "Support Center"}
	lines := make([]string, len(actions))
	for i, a := range actions {
		if i == 0 {
			lines[i] = styles.AccentStyle.Bold(true).Render(styles.SymbolArrow + " " + a)
			continue
		}
		lines[i] = styles.NormalStyle.Render(styles.SymbolArrow + " " + a)
	}
	return strings.Join(lines, "\n")
}

func recentActivity(items []Activity, width int) string {
	var body strings.Builder
	body.WriteString(styles.HeadingStyle.Render("Recent Activity"))
	body.WriteString("\n")
	body.WriteString(styles.MutedStyle.Render("Your latest account activities"))
	for _, a := range items {
		body.WriteString("\n\n")
		body.WriteString(styles.Checkmark(a.Title))
		body.WriteString("\n  ")
		body.WriteString(styles.MutedStyle.Render(a.When))
	}
	return styles.CardStyle.Width(width).Render(body.String())
}
