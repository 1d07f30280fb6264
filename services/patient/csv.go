package patient

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"nutritrack-go-worker/models"
	"nutritrack-go-worker/services/trackLog"
	"nutritrack-go-worker/structs"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// RequiredColumns is phone, user id, sex and the 60 numeric columns.
const RequiredColumns = 63

// ParsePatientsCSV reads the bundled patient CSV. The first line is a header.
// Rows with fewer than RequiredColumns fields, or without a user id, are
// skipped and logged. Numeric cells that do not parse are kept as NULL.
// A user id seen twice keeps its last row.
func ParsePatientsCSV(r io.Reader) ([]models.Patient, structs.StatisticModel) {
	var stats structs.StatisticModel
	logger := trackLog.WithFields(logrus.Fields{"task": "patient-import"})

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err != nil {
		if err != io.EOF {
			logger.Error("read csv header: ", err.Error())
		}
		return nil, stats
	}
	logger.Debugf("csv header has %d columns", len(header))

	index := make(map[string]int)
	var patients []models.Patient
	line := 1
	for {
		tokens, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				stats.TotalRows++
				stats.SkippedRows++
				logger.Errorf("line %d: %s", line, err.Error())
				continue
			}
			logger.Error("read csv: ", err.Error())
			break
		}
		stats.TotalRows++

		entity, err := parsePatientRow(tokens)
		if err != nil {
			stats.SkippedRows++
			logger.Errorf("line %d: %s", line, err.Error())
			continue
		}

		if i, ok := index[entity.UserID]; ok {
			patients[i] = entity
			continue
		}
		index[entity.UserID] = len(patients)
		patients = append(patients, entity)
	}

	stats.ImportedRows = len(patients)
	logger.Infof("parsed %d patients, skipped %d rows", stats.ImportedRows, stats.SkippedRows)
	return patients, stats
}

func parsePatientRow(tokens []string) (models.Patient, error) {
	var entity models.Patient
	if len(tokens) < RequiredColumns {
		return entity, fmt.Errorf("insufficient columns: %d", len(tokens))
	}

	entity.PhoneNumber = strings.TrimSpace(tokens[0])
	entity.UserID = strings.TrimSpace(tokens[1])
	entity.Sex = strings.TrimSpace(tokens[2])
	if entity.UserID == "" {
		return entity, errors.New("missing user id")
	}

	for i, field := range entity.NumericFields() {
		*field = parseNullableFloat(tokens[3+i])
	}
	return entity, nil
}

func parseNullableFloat(token string) *float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil {
		return nil
	}
	return &value
}
