package patient

import (
	"fmt"
	"strings"
	"testing"
)

// row builds a csv line with the three leading columns and n-3 numeric cells.
func row(phone, id, sex string, n int) string {
	fields := []string{phone, id, sex}
	for i := 3; i < n; i++ {
		fields = append(fields, fmt.Sprintf("%d.5", i))
	}
	return strings.Join(fields, ",")
}

func header() string {
	fields := []string{"PhoneNumber", "User_ID", "Sex"}
	for i := 3; i < RequiredColumns; i++ {
		fields = append(fields, fmt.Sprintf("col%d", i))
	}
	return strings.Join(fields, ",")
}

func TestParsePatientsCSVSkipsShortRows(t *testing.T) {
	data := strings.Join([]string{
		header(),
		row("61400000001", "1", "Male", RequiredColumns),
		row("61400000002", "2", "Female", RequiredColumns-1),
		row("61400000003", "3", "Female", RequiredColumns+2),
	}, "\n")

	patients, stats := ParsePatientsCSV(strings.NewReader(data))
	if len(patients) != 2 {
		t.Fatalf("patients = %d, want 2", len(patients))
	}
	if stats.TotalRows != 3 || stats.SkippedRows != 1 || stats.ImportedRows != 2 {
		t.Fatalf("stats = %+v", stats)
	}
	if patients[0].UserID != "1" || patients[1].UserID != "3" {
		t.Fatalf("ids = %s, %s", patients[0].UserID, patients[1].UserID)
	}
	if patients[0].HeifaTotalScoreMale == nil || *patients[0].HeifaTotalScoreMale != 3.5 {
		t.Fatalf("first numeric column = %v", patients[0].HeifaTotalScoreMale)
	}
	if patients[0].UnsaturatedFatServeSize == nil || *patients[0].UnsaturatedFatServeSize != 62.5 {
		t.Fatalf("last numeric column = %v", patients[0].UnsaturatedFatServeSize)
	}
}

func TestParsePatientsCSVEmptyIDAndNulls(t *testing.T) {
	nullRow := strings.Split(row("61400000005", " 5 ", "Female", RequiredColumns), ",")
	nullRow[3] = "n/a"
	data := strings.Join([]string{
		header(),
		row("61400000004", "", "Male", RequiredColumns),
		strings.Join(nullRow, ","),
	}, "\n")

	patients, stats := ParsePatientsCSV(strings.NewReader(data))
	if len(patients) != 1 || stats.SkippedRows != 1 {
		t.Fatalf("patients = %d, stats = %+v", len(patients), stats)
	}
	if patients[0].UserID != "5" {
		t.Errorf("user id = %q, want trimmed", patients[0].UserID)
	}
	if patients[0].HeifaTotalScoreMale != nil {
		t.Errorf("unparseable cell = %v, want nil", *patients[0].HeifaTotalScoreMale)
	}
}

func TestParsePatientsCSVDuplicateKeepsLast(t *testing.T) {
	data := strings.Join([]string{
		header(),
		row("61400000001", "1", "Male", RequiredColumns),
		row("61400000009", "1", "Female", RequiredColumns),
	}, "\n")

	patients, _ := ParsePatientsCSV(strings.NewReader(data))
	if len(patients) != 1 {
		t.Fatalf("patients = %d", len(patients))
	}
	if patients[0].PhoneNumber != "61400000009" || patients[0].Sex != "Female" {
		t.Fatalf("kept %+v", patients[0])
	}
}

func TestParsePatientsCSVEmptyInput(t *testing.T) {
	patients, stats := ParsePatientsCSV(strings.NewReader(""))
	if len(patients) != 0 || stats.TotalRows != 0 {
		t.Fatalf("patients = %d, stats = %+v", len(patients), stats)
	}
}
