package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbellows/gigbook/internal/cli"
	"github.com/mbellows/gigbook/internal/model"
	"github.com/mbellows/gigbook/internal/storage"
)

// setupEnv points every command at a fresh temporary data directory.
func setupEnv(t *testing.T) string {
	t.Helper()
	cli.SetColorEnabled(false)
	rootDir = t.TempDir()
	return rootDir
}

// seedGigs writes sample data into the current data directory.
func seedGigs(t *testing.T, gigs []model.Gig) {
	t.Helper()
	require.NoError(t, storage.Open(rootDir).Persist(gigs))
}

func sampleGigs() []model.Gig {
	return []model.Gig{
		{
			ID:         "aaaa1111-0000-0000-0000-000000000000",
			JobTitle:   "Paint fence",
			ClientName: "Acme Rentals",
			Date:       "2024-06-01",
			JobCost:    300,
			TaxRate:    10,
			JobStatus:  model.StatusComplete,
			Expenses:   []model.Expense{{ID: "e1", Description: "Paint", Amount: 20}},
		},
		{
			ID:         "bbbb2222-0000-0000-0000-000000000000",
			JobTitle:   "DJ set",
			ClientName: "Harbor Bar",
			Date:       "2024-07-12",
			Time:       "21:00",
			JobCost:    500,
			JobStatus:  model.StatusWorking,
		},
	}
}

// captureStdout runs fn and returns everything it printed.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	os.Stdout = old
	return buf.String(), err
}

func resetAddFlags() {
	addClient = ""
	addDate = ""
	addTime = ""
	addDescription = ""
	addPhone = ""
	addEmail = ""
	addAddress = ""
	addSite = ""
	addCost = 0
	addHours = 0
	addTax = 0
	addStatus = ""
	addExpenses = nil
	addCmd.Flags().Lookup("tax").Changed = false
}

func resetListFlags() {
	listSearch = ""
	listMonth = ""
	listYear = ""
	listStatus = ""
	listJSON = false
}

func resetEditFlags() {
	for _, name := range []string{
		"title", "client", "date", "time", "description", "phone",
		"email", "address", "site", "cost", "hours", "tax", "status",
	} {
		editCmd.Flags().Lookup(name).Changed = false
	}
	editExpenses = nil
	editClearExpenses = false
}

func TestAddCommand(t *testing.T) {
	setupEnv(t)
	resetAddFlags()
	addClient = "Acme Rentals"
	addDate = "2024-06-01"
	addCost = 300
	addExpenses = []string{"Paint:20", "Brushes:30"}

	output, err := captureStdout(t, func() error {
		return runAdd(addCmd, []string{"Paint fence"})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Paint fence for Acme Rentals on 2024-06-01")

	s := storage.Open(rootDir)
	require.Equal(t, 1, s.Len())
	g := s.Gigs()[0]
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, model.Money(300), g.JobCost)
	require.Len(t, g.Expenses, 2)
	assert.Equal(t, "Brushes", g.Expenses[1].Description)
	assert.NotEmpty(t, g.Expenses[0].ID)
}

func TestAddDefaultsDateAndTax(t *testing.T) {
	dir := setupEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("tax_rate: 8.5\n"), 0o600))

	resetAddFlags()
	addClient = "Acme Rentals"

	_, err := captureStdout(t, func() error {
		return runAdd(addCmd, []string{"Paint fence"})
	})
	require.NoError(t, err)

	g := storage.Open(rootDir).Gigs()[0]
	assert.NotEmpty(t, g.Date, "date should default to today")
	assert.Equal(t, model.Money(8.5), g.TaxRate)
}

func TestAddExplicitTaxWinsOverConfig(t *testing.T) {
	dir := setupEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("tax_rate: 8.5\n"), 0o600))

	resetAddFlags()
	addClient = "Acme Rentals"
	require.NoError(t, addCmd.Flags().Set("tax", "0"))

	_, err := captureStdout(t, func() error {
		return runAdd(addCmd, []string{"Paint fence"})
	})
	require.NoError(t, err)

	g := storage.Open(rootDir).Gigs()[0]
	assert.Equal(t, model.Money(0), g.TaxRate)
}

func TestAddRejectsInvalidExpense(t *testing.T) {
	setupEnv(t)
	resetAddFlags()
	addClient = "Acme Rentals"
	addExpenses = []string{"no-amount"}

	_, err := captureStdout(t, func() error {
		return runAdd(addCmd, []string{"Paint fence"})
	})
	assert.Error(t, err)
	assert.Equal(t, 0, storage.Open(rootDir).Len())
}

func TestListCommand(t *testing.T) {
	setupEnv(t)
	seedGigs(t, sampleGigs())

	tests := []struct {
		name     string
		flags    func()
		contains []string
		excludes []string
	}{
		{
			name:     "default lists everything newest first",
			flags:    func() {},
			contains: []string{"Paint fence", "DJ set", "2 gig(s)"},
		},
		{
			name:     "search by client",
			flags:    func() { listSearch = "harbor" },
			contains: []string{"DJ set"},
			excludes: []string{"Paint fence"},
		},
		{
			name:     "month and year filter",
			flags:    func() { listMonth = "6"; listYear = "2024" },
			contains: []string{"Paint fence"},
			excludes: []string{"DJ set"},
		},
		{
			name:     "status filter",
			flags:    func() { listStatus = "Working" },
			contains: []string{"DJ set"},
			excludes: []string{"Paint fence"},
		},
		{
			name:     "no match",
			flags:    func() { listSearch = "zzz" },
			contains: []string{"No gigs found."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetListFlags()
			tt.flags()

			output, err := captureStdout(t, func() error {
				return runList(listCmd, nil)
			})
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, output, s)
			}
		})
	}
}

func TestListSortsNewestFirst(t *testing.T) {
	setupEnv(t)
	seedGigs(t, sampleGigs())
	resetListFlags()

	output, err := captureStdout(t, func() error {
		return runList(listCmd, nil)
	})
	require.NoError(t, err)
	assert.Less(t, bytes.Index([]byte(output), []byte("DJ set")),
		bytes.Index([]byte(output), []byte("Paint fence")))
}

func TestListJSON(t *testing.T) {
	setupEnv(t)
	seedGigs(t, sampleGigs())
	resetListFlags()
	listJSON = true

	output, err := captureStdout(t, func() error {
		return runList(listCmd, nil)
	})
	require.NoError(t, err)

	var gigs []model.Gig
	require.NoError(t, json.Unmarshal([]byte(output), &gigs))
	assert.Len(t, gigs, 2)
}

func TestEditCommand(t *testing.T) {
	setupEnv(t)
	seedGigs(t, sampleGigs())
	resetEditFlags()

	require.NoError(t, editCmd.Flags().Set("status", "Complete"))
	require.NoError(t, editCmd.Flags().Set("cost", "650"))

	output, err := captureStdout(t, func() error {
		return runEdit(editCmd, []string{"bbbb2222"})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "bbbb2222 updated.")

	gigs := storage.Open(rootDir).Gigs()
	require.Len(t, gigs, 2)
	assert.Equal(t, model.StatusComplete, gigs[1].JobStatus)
	assert.Equal(t, model.Money(650), gigs[1].JobCost)
	assert.Equal(t, "DJ set", gigs[1].JobTitle, "unchanged fields must survive")
}

func TestEditOnlyChangedFlagsApply(t *testing.T) {
	setupEnv(t)
	seedGigs(t, sampleGigs())
	resetEditFlags()

	// stale flag values without Changed set must be ignored
	editTitle = "stale"
	editCost = 999

	_, err := captureStdout(t, func() error {
		return runEdit(editCmd, []string{"aaaa1111"})
	})
	require.NoError(t, err)

	g := storage.Open(rootDir).Gigs()[0]
	assert.Equal(t, "Paint fence", g.JobTitle)
	assert.Equal(t, model.Money(300), g.JobCost)
}

func TestEditUnknownID(t *testing.T) {
	setupEnv(t)
	seedGigs(t, sampleGigs())
	resetEditFlags()

	_, err := captureStdout(t, func() error {
		return runEdit(editCmd, []string{"ffff9999"})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestShowCommand(t *testing.T) {
	setupEnv(t)
	seedGigs(t, sampleGigs())

	output, err := captureStdout(t, func() error {
		return runShow(showCmd, []string{"aaaa1111"})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Paint fence")
	assert.Contains(t, output, "Acme Rentals")
	assert.Contains(t, output, "Subtotal:")
	assert.Contains(t, output, "$320.00")
	assert.Contains(t, output, "$352.00") // 320 + 10% tax
}

func TestDeleteCommand(t *testing.T) {
	setupEnv(t)
	seedGigs(t, sampleGigs())
	deleteAll = false
	deleteYes = false

	output, err := captureStdout(t, func() error {
		return runDelete(deleteCmd, []string{"aaaa1111"})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "aaaa1111 deleted.")

	gigs := storage.Open(rootDir).Gigs()
	require.Len(t, gigs, 1)
	assert.Equal(t, "DJ set", gigs[0].JobTitle)
}

func TestDeleteUnknownIDIsSoft(t *testing.T) {
	setupEnv(t)
	seedGigs(t, sampleGigs())
	deleteAll = false
	deleteYes = false

	output, err := captureStdout(t, func() error {
		return runDelete(deleteCmd, []string{"ffff9999"})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "nothing deleted")
	assert.Equal(t, 2, storage.Open(rootDir).Len())
}

func TestDeleteAll(t *testing.T) {
	setupEnv(t)
	seedGigs(t, sampleGigs())
	deleteAll = true
	deleteYes = true

	output, err := captureStdout(t, func() error {
		return runDelete(deleteCmd, nil)
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Deleted 2 gig(s).")
	assert.Equal(t, 0, storage.Open(rootDir).Len())
}

func TestDeleteRequiresIDOrAll(t *testing.T) {
	setupEnv(t)
	deleteAll = false
	deleteYes = false

	_, err := captureStdout(t, func() error {
		return runDelete(deleteCmd, nil)
	})
	assert.Error(t, err)

	deleteAll = true
	_, err = captureStdout(t, func() error {
		return runDelete(deleteCmd, []string{"aaaa1111"})
	})
	assert.Error(t, err)
}

func TestExportImportRoundTrip(t *testing.T) {
	setupEnv(t)
	seedGigs(t, sampleGigs())

	backup := filepath.Join(t.TempDir(), "backup.json")
	exportOutput = backup
	defer func() { exportOutput = "" }()

	output, err := captureStdout(t, func() error {
		return runExport(exportCmd, nil)
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Exported 2 gig(s)")

	// wipe and restore into a fresh directory
	rootDir = t.TempDir()
	importMerge = false

	output, err = captureStdout(t, func() error {
		return runImport(importCmd, []string{backup})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Imported 2 gig(s)")

	gigs := storage.Open(rootDir).Gigs()
	require.Len(t, gigs, 2)
	assert.Equal(t, "Paint fence", gigs[0].JobTitle)
}

func TestImportMergeSkipsExisting(t *testing.T) {
	setupEnv(t)
	seedGigs(t, sampleGigs())

	incoming := sampleGigs()
	incoming[0].JobTitle = "Repaint fence" // colliding ID, must be skipped
	incoming = append(incoming, model.Gig{
		ID:         "cccc3333-0000-0000-0000-000000000000",
		JobTitle:   "Mow lawn",
		ClientName: "B. Okafor",
		Date:       "2024-08-01",
	})
	data, err := json.MarshalIndent(incoming, "", "  ")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "phone.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	importMerge = true
	defer func() { importMerge = false }()

	output, err := captureStdout(t, func() error {
		return runImport(importCmd, []string{path})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Merged 1 new gig(s), skipped 2 existing.")

	gigs := storage.Open(rootDir).Gigs()
	require.Len(t, gigs, 3)
	assert.Equal(t, "Paint fence", gigs[0].JobTitle, "existing records are never overwritten")
}

func TestImportRejectsBadFile(t *testing.T) {
	setupEnv(t)
	seedGigs(t, sampleGigs())

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not":"an array"}`), 0o600))

	importMerge = false
	_, err := captureStdout(t, func() error {
		return runImport(importCmd, []string{path})
	})
	require.Error(t, err)
	assert.Equal(t, 2, storage.Open(rootDir).Len(), "failed import must not touch the collection")
}

func TestImportRejectsInvalidRecord(t *testing.T) {
	setupEnv(t)
	seedGigs(t, sampleGigs())

	bad := []model.Gig{
		{ID: "x1", JobTitle: "Valid", ClientName: "Acme", Date: "2024-06-01"},
		{ID: "x2", JobTitle: "", ClientName: "Acme", Date: "2024-06-01"},
	}
	data, err := json.Marshal(bad)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	importMerge = false
	_, err = captureStdout(t, func() error {
		return runImport(importCmd, []string{path})
	})
	require.Error(t, err)
	assert.Equal(t, 2, storage.Open(rootDir).Len())
}

func TestReceiptCommand(t *testing.T) {
	setupEnv(t)
	seedGigs(t, sampleGigs())
	receiptSave = false
	receiptOutput = ""

	output, err := captureStdout(t, func() error {
		return runReceipt(receiptCmd, []string{"aaaa1111"})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "RECEIPT")
	assert.Contains(t, output, "Acme Rentals")
	assert.Contains(t, output, "TOTAL")
	assert.Contains(t, output, "$352.00")
}

func TestReceiptToFile(t *testing.T) {
	setupEnv(t)
	seedGigs(t, sampleGigs())
	receiptSave = false
	receiptOutput = filepath.Join(t.TempDir(), "invoice.txt")
	defer func() { receiptOutput = "" }()

	output, err := captureStdout(t, func() error {
		return runReceipt(receiptCmd, []string{"aaaa1111"})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Receipt written to")

	data, err := os.ReadFile(receiptOutput)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Thank you for your business!")
}

func TestDraftDisabledByDefault(t *testing.T) {
	setupEnv(t)
	draftSave = false
	draftClient = ""
	draftTitle = ""
	draftDate = ""

	_, err := captureStdout(t, func() error {
		return runDraft(draftCmd, []string{"paint the fence tomorrow"})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parser.enabled")
}

func TestDraftCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"response": `{"jobTitle":"Paint fence","clientName":"Acme Rentals","date":"2024-06-04","jobCost":300}`,
		})
	}))
	defer srv.Close()

	dir := setupEnv(t)
	cfgYAML := "parser:\n  enabled: true\n  endpoint: " + srv.URL + "\n  model: test\n  timeout_ms: 2000\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfgYAML), 0o600))

	draftSave = false
	draftClient = ""
	draftTitle = ""
	draftDate = ""

	output, err := captureStdout(t, func() error {
		return runDraft(draftCmd, []string{"paint Acme's fence next tuesday for $300"})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Drafted gig:")
	assert.Contains(t, output, "Paint fence")
	assert.Contains(t, output, "Acme Rentals")
	assert.Contains(t, output, "--save")
	assert.Equal(t, 0, storage.Open(rootDir).Len(), "preview must not save")

	// user flags win over parsed values
	draftTitle = "Repaint fence"
	draftSave = true
	defer func() { draftSave = false; draftTitle = "" }()

	output, err = captureStdout(t, func() error {
		return runDraft(draftCmd, []string{"paint Acme's fence next tuesday for $300"})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "saved.")

	gigs := storage.Open(rootDir).Gigs()
	require.Len(t, gigs, 1)
	assert.Equal(t, "Repaint fence", gigs[0].JobTitle)
	assert.Equal(t, "Acme Rentals", gigs[0].ClientName)
	assert.NotEmpty(t, gigs[0].ID)
}

func TestResolveGigByPrefix(t *testing.T) {
	setupEnv(t)
	seedGigs(t, sampleGigs())
	s := storage.Open(rootDir)

	g, err := resolveGig(s, "bbbb")
	require.NoError(t, err)
	assert.Equal(t, "DJ set", g.JobTitle)

	_, err = resolveGig(s, "zzzz")
	require.Error(t, err)
	var nf *cli.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestParseExpenses(t *testing.T) {
	expenses, err := parseExpenses([]string{"Paint:20", "Cable ties:5.50"})
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "Cable ties", expenses[1].Description)
	assert.Equal(t, model.Money(5.5), expenses[1].Amount)
	assert.NotEqual(t, expenses[0].ID, expenses[1].ID)

	for _, bad := range []string{"no-amount", ":5", "desc:", "desc:abc"} {
		_, err := parseExpenses([]string{bad})
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestNormalizeMonth(t *testing.T) {
	assert.Equal(t, "06", normalizeMonth("6"))
	assert.Equal(t, "06", normalizeMonth("06"))
	assert.Equal(t, "12", normalizeMonth("12"))
	assert.Equal(t, "", normalizeMonth(""))
}
