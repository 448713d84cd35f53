package clusters

// seedClusters defines the eight archetype clusters. The declaration
// order is the canonical display order.
var seedClusters = []Cluster{
	{
		ID:          "tech-solver",
		Label:       "Tech Solver",
		Description: "Drawn to technical systems, puzzles and automation; happiest when something broken starts working",
		CoreSkills: []string{
			"programming", "debugging", "systems-thinking",
			"troubleshooting", "automation",
		},
	},
	{
		ID:          "helper-people",
		Label:       "People Helper",
		Description: "Energized by direct contact with people; listens, explains and smooths conflicts",
		CoreSkills: []string{
			"active-listening", "empathy", "verbal-communication",
			"conflict-resolution", "teaching",
		},
	},
	{
		ID:          "creative-maker",
		Label:       "Creative Maker",
		Description: "Turns ideas into visible work; cares about form, story and originality",
		CoreSkills: []string{
			"visual-design", "storytelling", "ideation",
			"content-creation", "audience-sense",
		},
	},
	{
		ID:          "analyst-researcher",
		Label:       "Analyst & Researcher",
		Description: "Prefers evidence to opinion; digs into data and sources until the picture is coherent",
		CoreSkills: []string{
			"data-analysis", "research-methods", "critical-thinking",
			"statistics", "report-writing",
		},
	},
	{
		ID:          "organizer-planner",
		Label:       "Organizer & Planner",
		Description: "Keeps work on the rails; schedules, budgets and processes are tools, not chores",
		CoreSkills: []string{
			"project-planning", "scheduling", "documentation",
			"process-design", "budgeting",
		},
	},
	{
		ID:          "hands-on-builder",
		Label:       "Hands-on Builder",
		Description: "Works with physical material and machines; judges results by what can be touched",
		CoreSkills: []string{
			"manual-dexterity", "tool-handling", "spatial-reasoning",
			"equipment-maintenance", "precision-work",
		},
	},
	{
		ID:          "care-support",
		Label:       "Care & Support",
		Description: "Attends to the wellbeing of others; patient, observant and dependable under routine",
		CoreSkills: []string{
			"care-assistance", "emotional-support", "patience",
			"safety-awareness", "attention-to-detail",
		},
	},
	{
		ID:          "leader-communicator",
		Label:       "Leader & Communicator",
		Description: "Takes the front of the room; aligns people, negotiates and decides",
		CoreSkills: []string{
			"public-speaking", "negotiation", "team-leadership",
			"decision-making", "persuasion",
		},
	},
}

func init() {
	idx = buildIndex(seedClusters)
}
