// Package measures resolves which mandated controls apply at a grading
// level and exposure.
package measures

import "github.com/eivindstn/helsegrad/internal/catalog"

// Cumulative control sets per grading level. Each level includes everything
// below it.
var technicalIDs = map[int][]string{
	1: {"tls", "firewall", "patching", "backup", "logging_basic"},
	2: {"tls", "firewall", "patching", "backup", "logging_basic", "mfa", "segmentation", "vulnerability_scan", "ids_ips", "secure_config"},
	3: {"tls", "firewall", "patching", "backup", "logging_basic", "mfa", "segmentation", "vulnerability_scan", "ids_ips", "secure_config", "eid", "e2e_encryption", "encryption_at_rest", "access_logging", "waf", "pentest"},
	4: {"tls", "firewall", "patching", "backup", "logging_basic", "mfa", "segmentation", "vulnerability_scan", "ids_ips", "secure_config", "eid", "e2e_encryption", "encryption_at_rest", "access_logging", "waf", "pentest", "nsm_crypto", "separated_infra", "physical_security"},
}

var organizationalIDs = map[int][]string{
	1: {"system_owner", "change_mgmt"},
	2: {"system_owner", "change_mgmt", "risk_assessment", "incident_procedures", "access_control_policy"},
	3: {"system_owner", "change_mgmt", "risk_assessment", "incident_procedures", "access_control_policy", "dpia", "dpa", "legal_basis", "annual_review", "confidentiality", "training", "continuity_plan"},
	4: {"system_owner", "change_mgmt", "risk_assessment", "incident_procedures", "access_control_policy", "dpia", "dpa", "legal_basis", "annual_review", "confidentiality", "training", "continuity_plan", "security_clearance", "supplier_clearance"},
}

// Set holds the controls mandated for one level and exposure.
type Set struct {
	Technical      []catalog.Measure
	Organizational []catalog.Measure
}

// ForLevel returns the mandated controls for a grading level. Internet
// exposure adds the WAF requirement from level 2 even though the technical
// baseline first requires it at level 3.
func ForLevel(level int, exposure catalog.Exposure) Set {
	techIDs := technicalIDs[level]
	if exposure == catalog.ExposureInternet && level >= 2 && !contains(techIDs, "waf") {
		techIDs = append(append([]string{}, techIDs...), "waf")
	}

	return Set{
		Technical:      filter(catalog.TechnicalMeasures, techIDs),
		Organizational: filter(catalog.OrganizationalMeasures, organizationalIDs[level]),
	}
}

// NotificationsForLevel returns the reporting duties that apply at or below
// the given grading level.
func NotificationsForLevel(level int) []catalog.NotificationRequirement {
	var out []catalog.NotificationRequirement
	for _, n := range catalog.NotificationRequirements {
		if n.Level <= level {
			out = append(out, n)
		}
	}
	return out
}

// NotesForLevel returns the sector guidance notes relevant at the given
// level. Notes with level 0 always apply.
func NotesForLevel(level int) []catalog.ImportantNote {
	var out []catalog.ImportantNote
	for _, n := range catalog.ImportantNotes {
		if n.Level == 0 || n.Level <= level {
			out = append(out, n)
		}
	}
	return out
}

// filter preserves catalog order rather than the order of ids.
func filter(all []catalog.Measure, ids []string) []catalog.Measure {
	var out []catalog.Measure
	for _, m := range all {
		if contains(ids, m.ID) {
			out = append(out, m)
		}
	}
	return out
}

func contains(ids []string, id string) bool {
	for _, have := range ids {
		if have == id {
			return true
		}
	}
	return false
}
