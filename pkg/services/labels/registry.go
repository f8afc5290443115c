package labels

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Registry resolves dimension codes to display labels for reports and
// exports: country codes, PCS-ESE job-category codes and gender codes.
// Loaded once, shared read-only.
type Registry interface {
	Country(code string) string
	JobCategory(code string) string
	Gender(code string) string
}

const (
	sectionCountries     = "countries"
	sectionJobCategories = "job_categories"
	sectionGenders       = "genders"
)

type registry struct {
	cfg *ini.File
}

// NewRegistry loads a labels file with [countries], [job_categories] and
// [genders] sections mapping code -> label.
func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels file: %w", err)
	}
	return &registry{cfg: cfg}, nil
}

// Empty returns a registry that echoes every code back, for setups without a
// labels file.
func Empty() Registry {
	return &registry{cfg: ini.Empty()}
}

func (r *registry) Country(code string) string {
	return r.lookup(sectionCountries, code)
}

func (r *registry) JobCategory(code string) string {
	return r.lookup(sectionJobCategories, code)
}

func (r *registry) Gender(code string) string {
	return r.lookup(sectionGenders, code)
}

// lookup falls back to the code itself when no label is defined.
func (r *registry) lookup(section, code string) string {
	if code == "" {
		return code
	}
	if label := r.cfg.Section(section).Key(code).String(); label != "" {
		return label
	}
	return code
}
