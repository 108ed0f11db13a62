package dashboard

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/onboard/internal/onboarding"
)

func lineOf(t *testing.T, out, s string) int {
	t.Helper()
	for i, l := range strings.Split(out, "\n") {
		if strings.Contains(l, s) {
			return i
		}
	}
	t.Fatalf("%q not found in:\n%s", s, out)
	return -1
}

func TestRender(t *testing.T) {
	t.Parallel()

	user := &onboarding.User{Name: "Ana", Email: "ana@example.com"}

	t.Run("wide terminal puts cards side by side", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(Render(user, 120))

		for _, want := range []string{
			"Welcome back, Ana!",
			"Your account dashboard",
			"Verification Status",
			"Pending",
			"Email verified",
			"ana@example.com",
			"View Profile",
			"Recent Activity",
			"KYC verification submitted",
			"Just now",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("dashboard missing %q", want)
			}
		}

		if lineOf(t, out, "Account Status") != lineOf(t, out, "Quick Actions") {
			t.Error("cards are not on one row")
		}
	})

	t.Run("narrow terminal stacks cards", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(Render(user, 40))
		if lineOf(t, out, "Account Status") >= lineOf(t, out, "Contact Information") {
			t.Error("cards are not stacked")
		}
	})

	t.Run("nil user", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(Render(nil, 120))
		if !strings.Contains(out, "Welcome back!") {
			t.Error("greeting without name missing")
		}
		if strings.Contains(out, "@") {
			t.Error("email rendered for nil user")
		}
	})

	t.Run("long email is truncated", func(t *testing.T) {
		t.Parallel()
		long := &onboarding.User{Name: "Ana", Email: "ana.maria.lima.de.souza@example-company.com"}
		out := ansi.Strip(Render(long, 120))
		if strings.Contains(out, long.Email) || !strings.Contains(out, "…") {
			t.Error("long email not truncated")
		}
	})
}
