package patient

import (
	"errors"
	"io/ioutil"
	"nutritrack-go-worker/database"
	"nutritrack-go-worker/enums"
	"nutritrack-go-worker/services/activityLog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setup(t *testing.T) {
	t.Helper()
	db, err := database.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
}

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "patients")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	path := filepath.Join(dir, "data.csv")
	if err := ioutil.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInitializeIfNeeded(t *testing.T) {
	setup(t)
	path := writeCSV(t,
		header(),
		row("61400000010", "10", "Male", RequiredColumns),
		row("61400000002", "2", "Female", RequiredColumns),
		row("61400000003", "3", "Female", 10),
	)

	var service PatientService
	stats, err := service.InitializeIfNeeded(path)
	if err != nil {
		t.Fatal(err)
	}
	if stats.ImportedRows != 2 || stats.SkippedRows != 1 || stats.TotalPatient != 2 {
		t.Fatalf("stats = %+v", stats)
	}

	ids, err := service.UserIDs()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != "2" || ids[1] != "10" {
		t.Fatalf("ids = %v, want numeric order", ids)
	}

	logs, err := activityLog.Latest(enums.JobImport, 1)
	if err != nil || len(logs) != 1 {
		t.Fatalf("activity log = %v, %v", logs, err)
	}

	// a populated table is left alone
	stats, err = service.InitializeIfNeeded(filepath.Join(filepath.Dir(path), "missing.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalPatient != 2 {
		t.Fatalf("second run stats = %+v", stats)
	}
}

func TestInitializeIfNeededMissingFile(t *testing.T) {
	setup(t)
	var service PatientService
	if _, err := service.InitializeIfNeeded("/nonexistent/data.csv"); err == nil {
		t.Fatal("expected an error for a missing csv")
	}
}

func TestInitializeIfNeededNoRows(t *testing.T) {
	setup(t)
	path := writeCSV(t, header(), row("1", "1", "Male", 5))
	var service PatientService
	if _, err := service.InitializeIfNeeded(path); !errors.Is(err, ErrNoPatients) {
		t.Fatalf("err = %v, want ErrNoPatients", err)
	}
}

func TestMarkQuestionnaireCompleted(t *testing.T) {
	setup(t)
	path := writeCSV(t, header(), row("61400000001", "1", "Male", RequiredColumns))
	var service PatientService
	if _, err := service.InitializeIfNeeded(path); err != nil {
		t.Fatal(err)
	}

	entity, err := service.MarkQuestionnaireCompleted("1")
	if err != nil {
		t.Fatal(err)
	}
	if !entity.HasCompletedInitialQuestionnaire {
		t.Fatal("flag not set")
	}
	if _, err := service.MarkQuestionnaireCompleted("1"); err != nil {
		t.Fatal(err)
	}
	if _, err := service.GetPatient("404"); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("err = %v", err)
	}
}
