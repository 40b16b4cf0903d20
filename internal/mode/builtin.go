package mode

// Builtin returns the five built-in modes with their hand-off matrix.
func Builtin() *Registry {
	return NewRegistry(
		Mode{
			Slug:        "code",
			Name:        "Code",
			Description: "Implementation, code modification, and review of source files.",
			Handoffs: map[string][]string{
				"architect": {"needs_architectural_changes", "design_clarification_needed", "pattern_violation_found"},
				"ask":       {"documentation_needed", "implementation_explanation", "usage_guidance"},
				"debug":     {"error_investigation_needed", "performance_issue_found", "system_analysis_required"},
				"test":      {"feature_ready_for_testing", "tests_need_update", "coverage_check_needed"},
			},
		},
		Mode{
			Slug:        "architect",
			Name:        "Architect",
			Description: "System design, architecture decisions, and pattern definition.",
			Handoffs: map[string][]string{
				"code":  {"implementation_needed", "code_modification_needed", "refactoring_required"},
				"ask":   {"needs_clarification", "information_lookup_needed"},
				"debug": {"design_flaw_detected", "performance_problem_found"},
				"test":  {"test_strategy_needed", "coverage_plan_required"},
			},
		},
		Mode{
			Slug:        "ask",
			Name:        "Ask",
			Description: "Answering questions, explaining concepts, and surfacing project context.",
			Handoffs: map[string][]string{
				"code":      {"implementation_request", "clarification_received"},
				"architect": {"design_discussion_needed"},
				"debug":     {"problem_report_received"},
				"test":      {"test_request_received"},
			},
		},
		Mode{
			Slug:        "debug",
			Name:        "Debug",
			Description: "Troubleshooting, error investigation, and root cause analysis.",
			Handoffs: map[string][]string{
				"code":      {"fix_implementation_needed", "performance_fix_required"},
				"architect": {"needs_architectural_review"},
				"ask":       {"explanation_needed"},
				"test":      {"fix_verification_needed", "regression_check_required"},
			},
		},
		Mode{
			Slug:        "test",
			Name:        "Test",
			Description: "Test planning, test execution, and coverage analysis.",
			Handoffs: map[string][]string{
				"code":      {"fixes_needed", "implementation_gap_found"},
				"architect": {"test_strategy_unclear"},
				"ask":       {"test_documentation_needed"},
				"debug":     {"unexpected_failure_found"},
			},
		},
	)
}
