package catalog

// seedSkills is the built-in skill catalog. IDs line up with the core
// skill lists in the cluster model.
var seedSkills = []Entry{
	// Tech Solver
	{ID: "programming", Label: "Programming"},
	{ID: "debugging", Label: "Debugging"},
	{ID: "systems-thinking", Label: "Systems thinking"},
	{ID: "troubleshooting", Label: "Troubleshooting"},
	{ID: "automation", Label: "Automation"},

	// People Helper
	{ID: "active-listening", Label: "Active listening"},
	{ID: "empathy", Label: "Empathy"},
	{ID: "verbal-communication", Label: "Verbal communication"},
	{ID: "conflict-resolution", Label: "Conflict resolution"},
	{ID: "teaching", Label: "Teaching"},

	// Creative Maker
	{ID: "visual-design", Label: "Visual design"},
	{ID: "storytelling", Label: "Storytelling"},
	{ID: "ideation", Label: "Ideation"},
	{ID: "content-creation", Label: "Content creation"},
	{ID: "audience-sense", Label: "Audience sense"},

	// Analyst & Researcher
	{ID: "data-analysis", Label: "Data analysis"},
	{ID: "research-methods", Label: "Research methods"},
	{ID: "critical-thinking", Label: "Critical thinking"},
	{ID: "statistics", Label: "Statistics"},
	{ID: "report-writing", Label: "Report writing"},

	// Organizer & Planner
	{ID: "project-planning", Label: "Project planning"},
	{ID: "scheduling", Label: "Scheduling"},
	{ID: "documentation", Label: "Documentation"},
	{ID: "process-design", Label: "Process design"},
	{ID: "budgeting", Label: "Budgeting"},

	// Hands-on Builder
	{ID: "manual-dexterity", Label: "Manual dexterity"},
	{ID: "tool-handling", Label: "Tool handling"},
	{ID: "spatial-reasoning", Label: "Spatial reasoning"},
	{ID: "equipment-maintenance", Label: "Equipment maintenance"},
	{ID: "precision-work", Label: "Precision work"},

	// Care & Support
	{ID: "care-assistance", Label: "Care assistance"},
	{ID: "emotional-support", Label: "Emotional support"},
	{ID: "patience", Label: "Patience"},
	{ID: "safety-awareness", Label: "Safety awareness"},
	{ID: "attention-to-detail", Label: "Attention to detail"},

	// Leader & Communicator
	{ID: "public-speaking", Label: "Public speaking"},
	{ID: "negotiation", Label: "Negotiation"},
	{ID: "team-leadership", Label: "Team leadership"},
	{ID: "decision-making", Label: "Decision making"},
	{ID: "persuasion", Label: "Persuasion"},
}
