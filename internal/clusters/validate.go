package clusters

import (
	"errors"
	"fmt"
)

// Validate checks the cluster set for structural issues: duplicate IDs,
// empty labels, and missing or duplicated core skills.
func Validate() error {
	return validateClusters(idx.clusters)
}

func validateClusters(cs []Cluster) error {
	var errs []error

	if len(cs) == 0 {
		return errors.New("cluster set is empty")
	}

	seen := make(map[string]bool, len(cs))
	for _, c := range cs {
		if c.ID == "" {
			errs = append(errs, errors.New("cluster with empty ID"))
			continue
		}
		if seen[c.ID] {
			errs = append(errs, fmt.Errorf("duplicate cluster ID: %q", c.ID))
		}
		seen[c.ID] = true

		if c.Label == "" {
			errs = append(errs, fmt.Errorf("cluster %q has no label", c.ID))
		}
		if len(c.CoreSkills) == 0 {
			errs = append(errs, fmt.Errorf("cluster %q has no core skills", c.ID))
		}

		skillSeen := make(map[string]bool, len(c.CoreSkills))
		for _, s := range c.CoreSkills {
			if s == "" {
				errs = append(errs, fmt.Errorf("cluster %q has an empty core skill ID", c.ID))
				continue
			}
			if skillSeen[s] {
				errs = append(errs, fmt.Errorf("cluster %q lists core skill %q twice", c.ID, s))
			}
			skillSeen[s] = true
		}
	}

	return errors.Join(errs...)
}
