package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/wishlist"
)

func wish(id, title, category string, price wishlist.Money, purchased bool) wishlist.Wish {
	return wishlist.Wish{
		ID:         id,
		Title:      title,
		Category:   category,
		Price:      price,
		TargetDate: wishlist.MustParseDate("2025-12-01"),
		Purchased:  purchased,
	}
}

func TestWishes(t *testing.T) {
	wishes := []wishlist.Wish{
		wish("1", "Lens", "Electronics", wishlist.M(100, "USD"), false),
		wish("2", "Bookshelf", "", wishlist.M(50, "EUR"), true),
	}

	got := Wishes(wishes, "EUR")

	want := "" +
		"| ID | Title | Price (EUR) | Category | Target | Status |\n" +
		"|:---|:---|---:|:---|:---|:---|\n" +
		"| 1 | Lens | €92.00 | Electronics | 2025-12-01 | open |\n" +
		"| 2 | Bookshelf | €50.00 | - | 2025-12-01 | purchased |\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWishes_Empty(t *testing.T) {
	got := Wishes(nil, "INR")
	if !strings.Contains(got, "No wishes yet") {
		t.Errorf("got %q", got)
	}
}

func TestSummary(t *testing.T) {
	wishes := []wishlist.Wish{
		wish("1", "Lens", "Electronics", wishlist.M(100, "USD"), false),
		wish("2", "Tripod", "Electronics", wishlist.M(50, "USD"), false),
		wish("3", "Bookshelf", "Furniture", wishlist.M(200, "USD"), true),
	}

	got := Summary(wishes, "USD")

	if !strings.Contains(got, "- Wishes: 3 (1 purchased)") {
		t.Errorf("missing totals:\n%s", got)
	}
	// purchased wishes do not count toward the remaining cost
	if !strings.Contains(got, "- Remaining to buy: $150.00") {
		t.Errorf("missing remaining:\n%s", got)
	}
	if !strings.Contains(got, "| Electronics | $150.00 |") {
		t.Errorf("missing category breakdown:\n%s", got)
	}
	if strings.Contains(got, "Furniture") {
		t.Errorf("purchased-only categories must not appear:\n%s", got)
	}
}

func TestCategories(t *testing.T) {
	got := Categories([]string{"Electronics", "Books"})
	if !strings.Contains(got, "- Electronics\n- Books\n") {
		t.Errorf("got:\n%s", got)
	}
}
