package bank

// seedStage2 defines the confirmation pool. Likelihood tables here are
// partial: unlisted clusters default to weight 1, so listed weights are
// relative to "tells us nothing" — above 1 favors the cluster, below 1
// counts against it.
var seedStage2 = []Question{
	{
		ID:           "stage2_q1_broken_system",
		Kind:         KindMultipleChoice,
		Stage:        2,
		Prompt:       "A system you rely on fails in a way nobody understands. What do you actually do?",
		Difficulty:   1,
		TargetSkills: []string{"debugging", "troubleshooting", "systems-thinking"},
		TargetClusters: []string{
			"tech-solver", "analyst-researcher",
		},
		Options: []Option{
			{
				Value: "bisect-cause",
				Label: "Reproduce it, then halve the search space until the cause is cornered",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":        1.80,
					"analyst-researcher": 1.30,
					"helper-people":      0.55,
					"care-support":       0.55,
				},
				SkillEvidence: map[string]int{
					"debugging":       75,
					"troubleshooting": 70,
				},
			},
			{
				Value: "map-system",
				Label: "Sketch how the parts connect before touching anything",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":        1.40,
					"analyst-researcher": 1.50,
					"organizer-planner":  1.20,
					"helper-people":      0.60,
				},
				SkillEvidence: map[string]int{
					"systems-thinking":  70,
					"critical-thinking": 55,
				},
			},
			{
				Value: "find-expert",
				Label: "Find whoever has seen this before and get them talking",
				ClusterLikelihoods: map[string]float64{
					"helper-people":       1.50,
					"leader-communicator": 1.35,
					"tech-solver":         0.70,
					"analyst-researcher":  0.60,
				},
				SkillEvidence: map[string]int{
					"verbal-communication": 55,
					"active-listening":     50,
				},
			},
		},
	},
	{
		ID:           "stage2_q2_upset_colleague",
		Kind:         KindMultipleChoice,
		Stage:        2,
		Prompt:       "A colleague is visibly upset after a meeting. What comes naturally?",
		Difficulty:   1,
		TargetSkills: []string{"active-listening", "empathy", "emotional-support"},
		TargetClusters: []string{
			"helper-people", "care-support",
		},
		Options: []Option{
			{
				Value: "listen-first",
				Label: "Sit with them and let them talk it out before offering anything",
				ClusterLikelihoods: map[string]float64{
					"helper-people":      1.70,
					"care-support":       1.60,
					"tech-solver":        0.60,
					"analyst-researcher": 0.60,
				},
				SkillEvidence: map[string]int{
					"active-listening":  75,
					"empathy":           70,
					"emotional-support": 60,
				},
			},
			{
				Value: "fix-problem",
				Label: "Work out what went wrong in the meeting and how to fix it",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":        1.40,
					"organizer-planner":  1.25,
					"analyst-researcher": 1.25,
					"care-support":       0.70,
				},
				SkillEvidence: map[string]int{
					"troubleshooting":   50,
					"critical-thinking": 45,
				},
			},
			{
				Value: "raise-it",
				Label: "Raise it with the meeting owner so it doesn't happen again",
				ClusterLikelihoods: map[string]float64{
					"leader-communicator": 1.55,
					"organizer-planner":   1.20,
					"care-support":        0.80,
				},
				SkillEvidence: map[string]int{
					"conflict-resolution": 55,
					"decision-making":     45,
				},
			},
		},
	},
	{
		ID:           "stage2_q3_messy_dataset",
		Kind:         KindMultipleChoice,
		Stage:        2,
		Prompt:       "You're handed a messy spreadsheet and asked \"what does it say?\". First move?",
		Difficulty:   2,
		TargetSkills: []string{"data-analysis", "statistics", "research-methods"},
		TargetClusters: []string{
			"analyst-researcher", "tech-solver",
		},
		Options: []Option{
			{
				Value: "clean-profile",
				Label: "Clean it, profile the columns, then look at the distributions",
				ClusterLikelihoods: map[string]float64{
					"analyst-researcher": 1.80,
					"tech-solver":        1.30,
					"helper-people":      0.55,
					"hands-on-builder":   0.60,
				},
				SkillEvidence: map[string]int{
					"data-analysis": 75,
					"statistics":    60,
				},
			},
			{
				Value: "ask-origin",
				Label: "Ask who collected it and what question it was meant to answer",
				ClusterLikelihoods: map[string]float64{
					"analyst-researcher":  1.45,
					"helper-people":       1.20,
					"leader-communicator": 1.15,
				},
				SkillEvidence: map[string]int{
					"research-methods":  70,
					"critical-thinking": 55,
				},
			},
			{
				Value: "chart-story",
				Label: "Get a chart up fast and shape it into a story people will follow",
				ClusterLikelihoods: map[string]float64{
					"creative-maker":      1.50,
					"leader-communicator": 1.35,
					"analyst-researcher":  0.75,
				},
				SkillEvidence: map[string]int{
					"storytelling":   55,
					"audience-sense": 50,
				},
			},
		},
	},
	{
		ID:           "stage2_q4_event_planning",
		Kind:         KindMultipleChoice,
		Stage:        2,
		Prompt:       "You're put in charge of a 50-person event three months out. What happens first?",
		Difficulty:   1,
		TargetSkills: []string{"project-planning", "scheduling", "budgeting"},
		TargetClusters: []string{
			"organizer-planner", "leader-communicator",
		},
		Options: []Option{
			{
				Value: "backwards-plan",
				Label: "Work backwards from the date: milestones, budget, owners",
				ClusterLikelihoods: map[string]float64{
					"organizer-planner":   1.80,
					"analyst-researcher":  1.15,
					"creative-maker":      0.60,
					"leader-communicator": 1.10,
				},
				SkillEvidence: map[string]int{
					"project-planning": 75,
					"scheduling":       65,
					"budgeting":        55,
				},
			},
			{
				Value: "recruit-team",
				Label: "Recruit the right helpers and divide the work",
				ClusterLikelihoods: map[string]float64{
					"leader-communicator": 1.60,
					"helper-people":       1.30,
					"organizer-planner":   1.10,
				},
				SkillEvidence: map[string]int{
					"team-leadership": 65,
					"decision-making": 50,
				},
			},
			{
				Value: "theme-vision",
				Label: "Nail the theme and feel of the event — logistics follow",
				ClusterLikelihoods: map[string]float64{
					"creative-maker":    1.65,
					"organizer-planner": 0.60,
					"care-support":      0.85,
				},
				SkillEvidence: map[string]int{
					"ideation":       60,
					"audience-sense": 50,
				},
			},
		},
	},
	{
		ID:           "stage2_q5_blank_page",
		Kind:         KindMultipleChoice,
		Stage:        2,
		Prompt:       "Facing a blank page on a creative brief, what gets you moving?",
		Difficulty:   2,
		TargetSkills: []string{"ideation", "visual-design", "content-creation"},
		TargetClusters: []string{
			"creative-maker",
		},
		Options: []Option{
			{
				Value: "many-sketches",
				Label: "Twenty rough sketches, fast — quantity first, taste later",
				ClusterLikelihoods: map[string]float64{
					"creative-maker":     1.75,
					"hands-on-builder":   1.15,
					"organizer-planner":  0.65,
					"analyst-researcher": 0.70,
				},
				SkillEvidence: map[string]int{
					"ideation":      75,
					"visual-design": 55,
				},
			},
			{
				Value: "study-refs",
				Label: "Collect references and work out why the good ones work",
				ClusterLikelihoods: map[string]float64{
					"analyst-researcher": 1.40,
					"creative-maker":     1.25,
					"tech-solver":        1.10,
				},
				SkillEvidence: map[string]int{
					"research-methods":  55,
					"critical-thinking": 50,
				},
			},
			{
				Value: "talk-audience",
				Label: "Talk to the people it's for until the shape appears",
				ClusterLikelihoods: map[string]float64{
					"helper-people":       1.45,
					"creative-maker":      1.20,
					"leader-communicator": 1.20,
				},
				SkillEvidence: map[string]int{
					"audience-sense":   65,
					"active-listening": 50,
				},
			},
		},
	},
	{
		ID:           "stage2_q6_flatpack",
		Kind:         KindMultipleChoice,
		Stage:        2,
		Prompt:       "Assembling complicated flat-pack furniture, you are the person who…",
		Difficulty:   1,
		TargetSkills: []string{"tool-handling", "spatial-reasoning", "manual-dexterity"},
		TargetClusters: []string{
			"hands-on-builder",
		},
		Options: []Option{
			{
				Value: "hands-first",
				Label: "Lays out every part, recognizes the joints, barely needs the manual",
				ClusterLikelihoods: map[string]float64{
					"hands-on-builder":    1.80,
					"tech-solver":         1.20,
					"helper-people":       0.70,
					"leader-communicator": 0.65,
				},
				SkillEvidence: map[string]int{
					"spatial-reasoning": 70,
					"tool-handling":     65,
					"manual-dexterity":  55,
				},
			},
			{
				Value: "manual-steps",
				Label: "Follows the manual step by step, ticking each one off",
				ClusterLikelihoods: map[string]float64{
					"organizer-planner":  1.55,
					"care-support":       1.25,
					"analyst-researcher": 1.10,
					"creative-maker":     0.70,
				},
				SkillEvidence: map[string]int{
					"attention-to-detail": 60,
					"documentation":       40,
				},
			},
			{
				Value: "delegate-it",
				Label: "Keeps morale up and hands the screwdriver to someone better suited",
				ClusterLikelihoods: map[string]float64{
					"leader-communicator": 1.50,
					"helper-people":       1.30,
					"hands-on-builder":    0.45,
				},
				SkillEvidence: map[string]int{
					"team-leadership": 50,
					"persuasion":      40,
				},
			},
		},
	},
	{
		ID:           "stage2_q7_difficult_day",
		Kind:         KindMultipleChoice,
		Stage:        2,
		Prompt:       "Someone in your care is having a terrible day and nothing is working. You…",
		Difficulty:   2,
		TargetSkills: []string{"patience", "care-assistance", "safety-awareness"},
		TargetClusters: []string{
			"care-support", "helper-people",
		},
		Options: []Option{
			{
				Value: "stay-steady",
				Label: "Stay calm and present — routines and small comforts, no rush",
				ClusterLikelihoods: map[string]float64{
					"care-support":       1.75,
					"helper-people":      1.35,
					"tech-solver":        0.60,
					"analyst-researcher": 0.60,
				},
				SkillEvidence: map[string]int{
					"patience":          75,
					"care-assistance":   70,
					"emotional-support": 60,
				},
			},
			{
				Value: "check-causes",
				Label: "Run through possible causes methodically until one fits",
				ClusterLikelihoods: map[string]float64{
					"analyst-researcher": 1.40,
					"tech-solver":        1.35,
					"care-support":       0.85,
				},
				SkillEvidence: map[string]int{
					"troubleshooting":   55,
					"critical-thinking": 50,
				},
			},
			{
				Value: "bring-others",
				Label: "Pull in family or colleagues so nobody carries it alone",
				ClusterLikelihoods: map[string]float64{
					"helper-people":       1.40,
					"leader-communicator": 1.30,
					"care-support":        1.10,
				},
				SkillEvidence: map[string]int{
					"verbal-communication": 55,
					"conflict-resolution":  40,
				},
			},
		},
	},
	{
		ID:           "stage2_q8_stalled_project",
		Kind:         KindMultipleChoice,
		Stage:        2,
		Prompt:       "A group project has stalled because two people want different directions. You…",
		Difficulty:   2,
		TargetSkills: []string{"team-leadership", "decision-making", "conflict-resolution"},
		TargetClusters: []string{
			"leader-communicator", "helper-people",
		},
		Options: []Option{
			{
				Value: "call-it",
				Label: "Hear both out, pick a direction, own the consequences",
				ClusterLikelihoods: map[string]float64{
					"leader-communicator": 1.75,
					"organizer-planner":   1.20,
					"care-support":        0.70,
					"creative-maker":      0.80,
				},
				SkillEvidence: map[string]int{
					"decision-making": 75,
					"team-leadership": 65,
				},
			},
			{
				Value: "mediate",
				Label: "Get the two talking until they find the overlap themselves",
				ClusterLikelihoods: map[string]float64{
					"helper-people":       1.65,
					"care-support":        1.25,
					"leader-communicator": 1.10,
					"tech-solver":         0.65,
				},
				SkillEvidence: map[string]int{
					"conflict-resolution": 75,
					"active-listening":    60,
					"empathy":             50,
				},
			},
			{
				Value: "prototype-both",
				Label: "Prototype both directions quickly and let the results decide",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":         1.45,
					"analyst-researcher":  1.35,
					"creative-maker":      1.20,
					"leader-communicator": 0.80,
				},
				SkillEvidence: map[string]int{
					"critical-thinking": 55,
					"ideation":          45,
				},
			},
		},
	},
	{
		ID:           "stage2_q9_repetitive_work",
		Kind:         KindMultiSelect,
		Stage:        2,
		Prompt:       "A tedious weekly chore lands on you permanently. Which of these would you actually do? Pick all that apply.",
		Difficulty:   2,
		TargetSkills: []string{"automation", "process-design", "documentation"},
		TargetClusters: []string{
			"tech-solver", "organizer-planner",
		},
		Options: []Option{
			{
				Value: "script-it",
				Label: "Script it away, even if the script takes longer than a year of chores",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":        1.80,
					"analyst-researcher": 1.20,
					"care-support":       0.60,
					"helper-people":      0.65,
				},
				SkillEvidence: map[string]int{
					"automation":  75,
					"programming": 60,
				},
			},
			{
				Value: "streamline-steps",
				Label: "Redesign the steps so it takes half the time by hand",
				ClusterLikelihoods: map[string]float64{
					"organizer-planner": 1.65,
					"hands-on-builder":  1.20,
					"tech-solver":       1.10,
				},
				SkillEvidence: map[string]int{
					"process-design": 70,
					"scheduling":     45,
				},
			},
			{
				Value: "write-guide",
				Label: "Write it up so anyone can cover it when I'm away",
				ClusterLikelihoods: map[string]float64{
					"organizer-planner":  1.40,
					"care-support":       1.25,
					"helper-people":      1.15,
					"analyst-researcher": 1.05,
				},
				SkillEvidence: map[string]int{
					"documentation":       70,
					"attention-to-detail": 45,
				},
			},
			{
				Value: "just-do-it",
				Label: "Just do it — it's twenty minutes, not a project",
				ClusterLikelihoods: map[string]float64{
					"hands-on-builder": 1.35,
					"care-support":     1.30,
					"tech-solver":      0.55,
					"creative-maker":   0.75,
				},
				SkillEvidence: map[string]int{
					"patience": 45,
				},
			},
		},
	},
	{
		ID:           "stage2_q10_explaining",
		Kind:         KindScale,
		Stage:        2,
		Prompt:       "\"People regularly tell me I explain things well.\" How much do you agree?",
		Description:  "1 = strongly disagree, 5 = strongly agree",
		Difficulty:   2,
		TargetSkills: []string{"teaching", "verbal-communication", "public-speaking"},
		TargetClusters: []string{
			"helper-people", "leader-communicator",
		},
		Options: []Option{
			{
				Value: "1",
				Label: "Strongly disagree",
				ClusterLikelihoods: map[string]float64{
					"helper-people":       0.40,
					"leader-communicator": 0.35,
					"hands-on-builder":    1.25,
					"tech-solver":         1.15,
				},
			},
			{
				Value: "2",
				Label: "Disagree",
				ClusterLikelihoods: map[string]float64{
					"helper-people":       0.60,
					"leader-communicator": 0.55,
					"analyst-researcher":  1.15,
				},
			},
			{
				Value: "3",
				Label: "Neutral",
				ClusterLikelihoods: map[string]float64{
					"organizer-planner": 1.10,
					"creative-maker":    1.10,
				},
			},
			{
				Value: "4",
				Label: "Agree",
				ClusterLikelihoods: map[string]float64{
					"helper-people":       1.40,
					"leader-communicator": 1.30,
					"care-support":        1.15,
				},
				SkillEvidence: map[string]int{
					"teaching":             55,
					"verbal-communication": 50,
				},
			},
			{
				Value: "5",
				Label: "Strongly agree",
				ClusterLikelihoods: map[string]float64{
					"helper-people":       1.60,
					"leader-communicator": 1.55,
					"tech-solver":         0.70,
					"hands-on-builder":    0.65,
				},
				SkillEvidence: map[string]int{
					"teaching":             70,
					"verbal-communication": 65,
					"public-speaking":      55,
				},
			},
		},
	},
	{
		ID:           "stage2_q11_hard_sell",
		Kind:         KindMultipleChoice,
		Stage:        2,
		Prompt:       "You must win over a skeptical decision-maker who has already said no once. Your approach?",
		Difficulty:   3,
		TargetSkills: []string{"negotiation", "persuasion", "public-speaking"},
		TargetClusters: []string{
			"leader-communicator",
		},
		Options: []Option{
			{
				Value: "find-their-win",
				Label: "Find out what a win looks like for them and reframe the ask around it",
				ClusterLikelihoods: map[string]float64{
					"leader-communicator": 1.70,
					"helper-people":       1.30,
					"tech-solver":         0.75,
					"hands-on-builder":    0.65,
				},
				SkillEvidence: map[string]int{
					"negotiation": 75,
					"persuasion":  65,
					"empathy":     45,
				},
			},
			{
				Value: "stack-evidence",
				Label: "Build an evidence pack so strong the numbers argue for me",
				ClusterLikelihoods: map[string]float64{
					"analyst-researcher":  1.60,
					"tech-solver":         1.25,
					"leader-communicator": 0.90,
					"care-support":        0.75,
				},
				SkillEvidence: map[string]int{
					"data-analysis":  55,
					"report-writing": 50,
				},
			},
			{
				Value: "live-demo",
				Label: "Build something they can see and touch — demos beat slides",
				ClusterLikelihoods: map[string]float64{
					"creative-maker":   1.45,
					"hands-on-builder": 1.40,
					"tech-solver":      1.20,
				},
				SkillEvidence: map[string]int{
					"content-creation": 50,
					"precision-work":   40,
				},
			},
		},
	},
	{
		ID:           "stage2_q12_quality_gate",
		Kind:         KindMultipleChoice,
		Stage:        2,
		Prompt:       "Before something you made goes out the door, what does \"ready\" mean to you?",
		Difficulty:   3,
		TargetSkills: []string{"attention-to-detail", "precision-work", "critical-thinking"},
		TargetClusters: []string{
			"care-support", "hands-on-builder", "analyst-researcher",
		},
		Options: []Option{
			{
				Value: "checked-twice",
				Label: "Every edge case checked twice; I'd rather be late than wrong",
				ClusterLikelihoods: map[string]float64{
					"care-support":        1.45,
					"analyst-researcher":  1.40,
					"hands-on-builder":    1.20,
					"creative-maker":      0.70,
					"leader-communicator": 0.75,
				},
				SkillEvidence: map[string]int{
					"attention-to-detail": 70,
					"precision-work":      60,
				},
			},
			{
				Value: "good-enough",
				Label: "It ships when it solves the problem; polish is iteration two",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":         1.35,
					"leader-communicator": 1.30,
					"creative-maker":      1.15,
					"care-support":        0.65,
				},
				SkillEvidence: map[string]int{
					"decision-making": 50,
				},
			},
			{
				Value: "peer-review",
				Label: "Ready means someone I trust has torn it apart and it survived",
				ClusterLikelihoods: map[string]float64{
					"analyst-researcher": 1.40,
					"tech-solver":        1.25,
					"helper-people":      1.10,
				},
				SkillEvidence: map[string]int{
					"critical-thinking": 60,
					"research-methods":  40,
				},
			},
		},
	},
}

func init() {
	idx = buildIndex(seedStage1, seedStage2)
}
