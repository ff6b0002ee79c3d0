package fixtures

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"license-management/internal/domain/activity"
	"license-management/internal/domain/licenses"

	"gopkg.in/yaml.v3"
)

//go:embed mock_data.yaml
var defaultData []byte

type licenseDoc struct {
	ID            string `yaml:"id"`
	LicenseNumber string `yaml:"license_number"`
	CompanyName   string `yaml:"company_name"`
	LicenseType   string `yaml:"license_type"`
	IssueDate     string `yaml:"issue_date"`
	ExpiryDate    string `yaml:"expiry_date"`
	Status        string `yaml:"status"`
	IssuedBy      string `yaml:"issued_by"`
}

type activityDoc struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Age         string `yaml:"age"`
	Timestamp   string `yaml:"timestamp"`
	Type        string `yaml:"type"`
}

type document struct {
	Licenses   []licenseDoc  `yaml:"licenses"`
	Activities []activityDoc `yaml:"activities"`
}

// Set es el contenido de un archivo de fixtures ya resuelto contra un "now".
type Set struct {
	Licenses   []licenses.License
	Activities []activity.Activity
}

// Default devuelve los datos mock embebidos.
func Default(now time.Time) (Set, error) {
	return Parse(defaultData, now)
}

// Load lee fixtures desde path; path vacío => datos embebidos.
func Load(path string, now time.Time) (Set, error) {
	if strings.TrimSpace(path) == "" {
		return Default(now)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("fixtures: read %s: %w", path, err)
	}
	return Parse(b, now)
}

func Parse(data []byte, now time.Time) (Set, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Set{}, fmt.Errorf("fixtures: decode yaml: %w", err)
	}

	set := Set{
		Licenses:   make([]licenses.License, 0, len(doc.Licenses)),
		Activities: make([]activity.Activity, 0, len(doc.Activities)),
	}

	for _, d := range doc.Licenses {
		st, ok := licenses.ParseStatus(d.Status)
		if !ok {
			return Set{}, fmt.Errorf("fixtures: license %s: unknown status %q", d.ID, d.Status)
		}
		set.Licenses = append(set.Licenses, licenses.License{
			ID:            d.ID,
			LicenseNumber: d.LicenseNumber,
			CompanyName:   d.CompanyName,
			LicenseType:   d.LicenseType,
			IssueDate:     d.IssueDate,
			ExpiryDate:    d.ExpiryDate,
			Status:        st,
			IssuedBy:      d.IssuedBy,
		})
	}

	for _, d := range doc.Activities {
		ts, err := resolveTimestamp(d, now)
		if err != nil {
			return Set{}, fmt.Errorf("fixtures: activity %s: %w", d.ID, err)
		}
		typ := activity.Type(strings.TrimSpace(d.Type))
		if !typ.Valid() {
			return Set{}, fmt.Errorf("fixtures: activity %s: unknown type %q", d.ID, d.Type)
		}
		set.Activities = append(set.Activities, activity.Activity{
			ID:          d.ID,
			Description: d.Description,
			Timestamp:   ts,
			Type:        typ,
		})
	}

	return set, nil
}

func resolveTimestamp(d activityDoc, now time.Time) (time.Time, error) {
	if s := strings.TrimSpace(d.Timestamp); s != "" {
		return time.Parse(time.RFC3339, s)
	}
	if s := strings.TrimSpace(d.Age); s != "" {
		age, err := time.ParseDuration(s)
		if err != nil {
			return time.Time{}, err
		}
		return now.Add(-age), nil
	}
	return time.Time{}, errors.New("age or timestamp required")
}

// Seed carga el set en los servicios. Registros ya existentes se saltean,
// así el seed se puede correr más de una vez.
func Seed(ctx context.Context, set Set, lic *licenses.Service, act *activity.Service) (int, error) {
	n := 0
	for _, l := range set.Licenses {
		if _, err := lic.Create(ctx, l); err != nil {
			if isDuplicate(err) {
				continue
			}
			return n, err
		}
		n++
	}
	for _, a := range set.Activities {
		if _, err := act.Append(ctx, a); err != nil {
			if isDuplicate(err) {
				continue
			}
			return n, err
		}
		n++
	}
	return n, nil
}

func isDuplicate(err error) bool {
	return errors.Is(err, licenses.ErrAlreadyExists) || errors.Is(err, activity.ErrAlreadyExists)
}
