package features

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/mmcdole/bookcart/internal/domain"
	"github.com/mmcdole/bookcart/internal/session"
)

type catalogTestContext struct {
	state session.State
}

func (c *catalogTestContext) reset() {
	c.state = session.New(nil)
}

func (c *catalogTestContext) aCatalogWithBooks(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("expected a header and at least one book")
	}

	var books []domain.Book
	for _, row := range table.Rows[1:] {
		if len(row.Cells) != 4 {
			return fmt.Errorf("expected 4 columns, got %d", len(row.Cells))
		}
		price, err := decimal.NewFromString(row.Cells[3].Value)
		if err != nil {
			return err
		}
		books = append(books, domain.Book{
			Title:    row.Cells[0].Value,
			Author:   row.Cells[1].Value,
			Category: row.Cells[2].Value,
			Price:    price,
		})
	}

	c.state = session.Apply(c.state, session.CatalogRequested{})
	c.state = session.Apply(c.state, session.CatalogLoaded{
		Seq:      c.state.LoadSeq,
		Snapshot: domain.Snapshot{Books: books},
	})
	return c.state.Err
}

func (c *catalogTestContext) iChooseTheFilter(token string) error {
	c.state = session.Apply(c.state, session.FilterTokenChanged{Token: token})
	return c.state.Err
}

func (c *catalogTestContext) iChooseTheSort(label string) error {
	key := domain.ParseSortKey(label)
	if key.Field == domain.SortNone {
		return fmt.Errorf("unknown sort %q", label)
	}
	c.state = session.Apply(c.state, session.SortChanged{Key: key})
	return c.state.Err
}

func (c *catalogTestContext) iAddToTheCart(title string) error {
	c.state = session.Apply(c.state, session.AddToCart{Title: title})
	return c.state.Err
}

func (c *catalogTestContext) iRemoveOneFromTheCart(title string) error {
	c.state = session.Apply(c.state, session.RemoveFromCart{Title: title})
	return c.state.Err
}

func (c *catalogTestContext) iCheckOut() error {
	c.state = session.Apply(c.state, session.Checkout{At: time.Now()})
	return c.state.Err
}

func (c *catalogTestContext) theViewIsEmpty() error {
	if len(c.state.View) != 0 {
		return fmt.Errorf("expected empty view, got %d books", len(c.state.View))
	}
	return nil
}

func (c *catalogTestContext) theViewLists(expected string) error {
	titles := make([]string, len(c.state.View))
	for i, b := range c.state.View {
		titles[i] = b.Title
	}
	if got := strings.Join(titles, ", "); got != expected {
		return fmt.Errorf("expected view %q, got %q", expected, got)
	}
	return nil
}

func (c *catalogTestContext) theCartHasLines(expected string) error {
	lines, _ := session.CartView(c.state)
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = fmt.Sprintf("%s x%d", l.Title, l.Quantity)
	}
	if got := strings.Join(parts, ", "); got != expected {
		return fmt.Errorf("expected cart %q, got %q", expected, got)
	}
	return nil
}

func (c *catalogTestContext) theCartTotalIs(expected int) error {
	_, total := session.CartView(c.state)
	if !total.Equal(decimal.NewFromInt(int64(expected))) {
		return fmt.Errorf("expected total %d, got %s", expected, total)
	}
	return nil
}

func (c *catalogTestContext) theReceiptTotalIs(expected int) error {
	if c.state.LastReceipt == nil {
		return fmt.Errorf("no receipt")
	}
	if !c.state.LastReceipt.Total.Equal(decimal.NewFromInt(int64(expected))) {
		return fmt.Errorf("expected receipt total %d, got %s", expected, c.state.LastReceipt.Total)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &catalogTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a catalog with books:$`, tc.aCatalogWithBooks)

	// When steps
	ctx.Step(`^I choose the filter "([^"]*)"$`, tc.iChooseTheFilter)
	ctx.Step(`^I choose the sort "([^"]*)"$`, tc.iChooseTheSort)
	ctx.Step(`^I add "([^"]*)" to the cart$`, tc.iAddToTheCart)
	ctx.Step(`^I remove one "([^"]*)" from the cart$`, tc.iRemoveOneFromTheCart)
	ctx.Step(`^I check out$`, tc.iCheckOut)

	// Then steps
	ctx.Step(`^the view is empty$`, tc.theViewIsEmpty)
	ctx.Step(`^the view lists "([^"]*)"$`, tc.theViewLists)
	ctx.Step(`^the cart has lines "([^"]*)"$`, tc.theCartHasLines)
	ctx.Step(`^the cart total is (\d+)$`, tc.theCartTotalIs)
	ctx.Step(`^the receipt total is (\d+)$`, tc.theReceiptTotalIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"catalog.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
