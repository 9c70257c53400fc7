package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/menu-pricing/backend/internal/integration/persistence/model"
)

func registerAccountSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Given(`^I am authenticated as "([^"]*)"$`, t.iAmAuthenticatedAs)
	ctx.Given(`^I am not authenticated$`, t.iAmNotAuthenticated)
	ctx.Given(`^my account wants weekly COGS reminders$`, t.myAccountWantsWeeklyCOGSReminders)
}

func registerDataSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Given(`^the following sales records exist:$`, t.theFollowingSalesRecordsExist)
	ctx.Step(`^a COGS entry of "([^"]*)" exists for the week starting "([^"]*)"$`, t.aCOGSEntryExistsForTheWeekStarting)
}

func registerUpstreamSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Given(`^the point-of-sale API responds to "([^"]*)" "([^"]*)" with status (\d+) and body:$`, t.thePOSAPIRespondsWith)
	ctx.Given(`^the point-of-sale API responds to call (\d+) of "([^"]*)" "([^"]*)" with status (\d+) and body:$`, t.thePOSAPIRespondsToCallWith)
	ctx.Then(`^the point-of-sale API should have received (\d+) "([^"]*)" requests? to "([^"]*)"$`, t.thePOSAPIShouldHaveReceived)
	ctx.Then(`^the "([^"]*)" request to "([^"]*)" should have carried "([^"]*)" set to "([^"]*)"$`, t.theRequestShouldHaveCarried)
	ctx.Then(`^the "([^"]*)" request to "([^"]*)" should have been authenticated with the point-of-sale key$`, t.theRequestShouldBeAuthenticated)
}

func registerJobSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.When(`^I wait for the import to finish$`, t.iWaitForTheImportToFinish)
	ctx.When(`^the COGS refresher runs$`, t.theCOGSRefresherRuns)
	ctx.When(`^the weekly reminder job runs$`, t.theWeeklyReminderJobRuns)
	ctx.Then(`^(\d+) reminder emails? should have been sent$`, t.reminderEmailsShouldHaveBeenSent)
}

func (t *testContext) iAmAuthenticatedAs(email string) error {
	t.accountID = uuid.New()
	t.email = email

	token, err := injector.TokenService.GenerateAccessToken(t.accountID, email)
	if err != nil {
		return fmt.Errorf("failed to issue access token: %w", err)
	}
	t.accessToken = token
	return nil
}

func (t *testContext) iAmNotAuthenticated() error {
	t.accessToken = ""
	return nil
}

func (t *testContext) myAccountWantsWeeklyCOGSReminders() error {
	return testDB.DbConn.Create(&model.NotificationSettingsModel{
		AccountID:          t.accountID,
		Email:              t.email,
		WeeklyCOGSReminder: true,
		UpdatedAt:          time.Now().UTC(),
	}).Error
}

// theFollowingSalesRecordsExist expects the columns
// order_id | item_name | category | quantity | revenue | sold_at, with an optional cost.
func (t *testContext) theFollowingSalesRecordsExist(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("sales table needs a header and at least one row")
	}

	header := make(map[string]int, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[cell.Value] = i
	}

	for n, row := range table.Rows[1:] {
		value := func(column string) string {
			if i, ok := header[column]; ok {
				return row.Cells[i].Value
			}
			return ""
		}

		quantity, err := strconv.Atoi(value("quantity"))
		if err != nil {
			return fmt.Errorf("row %d: invalid quantity: %w", n+1, err)
		}
		revenue, err := decimal.NewFromString(value("revenue"))
		if err != nil {
			return fmt.Errorf("row %d: invalid revenue: %w", n+1, err)
		}
		soldAt, err := time.Parse(time.RFC3339, value("sold_at"))
		if err != nil {
			return fmt.Errorf("row %d: invalid sold_at: %w", n+1, err)
		}

		record := &model.SalesRecordModel{
			ID:             uuid.New(),
			AccountID:      t.accountID,
			ExternalLineID: fmt.Sprintf("line-%d", n+1),
			OrderID:        value("order_id"),
			ItemName:       value("item_name"),
			Category:       value("category"),
			Quantity:       quantity,
			Revenue:        revenue,
			SoldAt:         soldAt.UTC(),
			CreatedAt:      time.Now().UTC(),
		}
		if raw := value("cost"); raw != "" {
			cost, err := decimal.NewFromString(raw)
			if err != nil {
				return fmt.Errorf("row %d: invalid cost: %w", n+1, err)
			}
			record.Cost = &cost
		}

		if err := testDB.DbConn.Create(record).Error; err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) aCOGSEntryExistsForTheWeekStarting(amount, weekStart string) error {
	start, err := time.Parse("2006-01-02", weekStart)
	if err != nil {
		return err
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return testDB.DbConn.Create(&model.COGSEntryModel{
		ID:            uuid.New(),
		AccountID:     t.accountID,
		WeekStartDate: start,
		WeekEndDate:   start.AddDate(0, 0, 6),
		Amount:        value,
		CreatedAt:     now,
		UpdatedAt:     now,
	}).Error
}

func (t *testContext) thePOSAPIRespondsWith(method, path string, status int, body *godog.DocString) error {
	return t.scriptUpstream(-1, method, path, status, body)
}

func (t *testContext) thePOSAPIRespondsToCallWith(call int, method, path string, status int, body *godog.DocString) error {
	return t.scriptUpstream(call-1, method, path, status, body)
}

func (t *testContext) scriptUpstream(index int, method, path string, status int, body *godog.DocString) error {
	var payload any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(body.Content)), &payload); err != nil {
		return fmt.Errorf("invalid upstream body: %w", err)
	}
	upstreamAPI.SetResponse(index, method, path, status, payload)
	return nil
}

func (t *testContext) thePOSAPIShouldHaveReceived(count int, method, path string) error {
	if got := upstreamAPI.CallCount(method, path); got != count {
		return fmt.Errorf("expected %d %s %s calls, got %d", count, method, path, got)
	}
	return nil
}

func (t *testContext) theRequestShouldHaveCarried(method, path, field, expected string) error {
	body := upstreamAPI.GetRequestBody(method, path, 0)
	if body == nil {
		return fmt.Errorf("no %s %s request was received", method, path)
	}
	if got := fmt.Sprintf("%v", body[field]); got != expected {
		return fmt.Errorf("expected %s %s field %q to be %q, got %q", method, path, field, expected, got)
	}
	return nil
}

func (t *testContext) theRequestShouldBeAuthenticated(method, path string) error {
	headers := upstreamAPI.GetRequestHeaders(method, path, 0)
	if headers == nil {
		return fmt.Errorf("no %s %s request was received", method, path)
	}
	if got, want := headers["Authorization"], "Bearer "+testPOSAPIKey; got != want {
		return fmt.Errorf("expected Authorization %q, got %q", want, got)
	}
	return nil
}

func (t *testContext) iWaitForTheImportToFinish() error {
	if t.importID == "" {
		return fmt.Errorf("no import was started in this scenario")
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if err := t.executeRequest("GET", "/api/v1/sales/imports/"+t.importID, nil); err != nil {
			return err
		}
		if body, err := t.jsonBody(); err == nil {
			if status, _ := body["status"].(string); status == "completed" || status == "error" {
				return nil
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	return fmt.Errorf("import %s did not finish in time: %v", t.importID, t.response.body)
}

func (t *testContext) theCOGSRefresherRuns() error {
	injector.Refresher.Refresh(context.Background())
	return nil
}

func (t *testContext) theWeeklyReminderJobRuns() error {
	_, err := injector.Scheduler.RunWeeklyReminders(context.Background())
	return err
}

func (t *testContext) reminderEmailsShouldHaveBeenSent(count int) error {
	sender, ok := emailSender()
	if !ok {
		return fmt.Errorf("reminder emails are not captured by a mock sender")
	}
	if len(sender.Sent) != count {
		return fmt.Errorf("expected %d reminder emails, got %d", count, len(sender.Sent))
	}
	return nil
}
