package bank

// seedStage1 defines the eight orientation items. Every option carries
// a full eight-cluster likelihood table so a single answer moves the
// whole distribution.
var seedStage1 = []Question{
	{
		ID:         "stage1_q1_preference",
		Kind:       KindMultipleChoice,
		Stage:      1,
		Prompt:     "You have a free Saturday with no obligations. What are you most likely drawn to?",
		Difficulty: 1,
		Options: []Option{
			{
				Value: "talking-people",
				Label: "Catching up with people — listening, advising, just being around others",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":         0.20,
					"helper-people":       0.90,
					"creative-maker":      0.35,
					"analyst-researcher":  0.15,
					"organizer-planner":   0.40,
					"hands-on-builder":    0.25,
					"care-support":        0.80,
					"leader-communicator": 0.65,
				},
			},
			{
				Value: "tinkering-tech",
				Label: "Tinkering with a device, a script or a home-automation setup",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":         0.90,
					"helper-people":       0.15,
					"creative-maker":      0.35,
					"analyst-researcher":  0.55,
					"organizer-planner":   0.30,
					"hands-on-builder":    0.60,
					"care-support":        0.10,
					"leader-communicator": 0.20,
				},
			},
			{
				Value: "making-something",
				Label: "Making something — drawing, writing, filming, crafting",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":         0.30,
					"helper-people":       0.30,
					"creative-maker":      0.90,
					"analyst-researcher":  0.20,
					"organizer-planner":   0.20,
					"hands-on-builder":    0.55,
					"care-support":        0.25,
					"leader-communicator": 0.30,
				},
			},
			{
				Value: "digging-topic",
				Label: "Going deep on a topic — reading, comparing sources, taking notes",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":         0.50,
					"helper-people":       0.20,
					"creative-maker":      0.30,
					"analyst-researcher":  0.90,
					"organizer-planner":   0.45,
					"hands-on-builder":    0.15,
					"care-support":        0.20,
					"leader-communicator": 0.25,
				},
			},
		},
	},
	{
		ID:          "stage1_q2_energize",
		Kind:        KindMultiSelect,
		Stage:       1,
		Prompt:      "Which of these leave you with more energy than you started with? Pick up to two.",
		Description: "There is no right answer — pick what actually applies.",
		Difficulty:  1,
		Options: []Option{
			{
				Value: "solving-puzzle",
				Label: "Cracking a hard logical problem",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":         0.85,
					"helper-people":       0.25,
					"creative-maker":      0.35,
					"analyst-researcher":  0.80,
					"organizer-planner":   0.40,
					"hands-on-builder":    0.35,
					"care-support":        0.20,
					"leader-communicator": 0.30,
				},
			},
			{
				Value: "helping-someone",
				Label: "Helping someone work through a difficulty",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":         0.25,
					"helper-people":       0.90,
					"creative-maker":      0.30,
					"analyst-researcher":  0.20,
					"organizer-planner":   0.35,
					"hands-on-builder":    0.25,
					"care-support":        0.85,
					"leader-communicator": 0.55,
				},
			},
			{
				Value: "finishing-plan",
				Label: "Ticking off the last item of a plan I made",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":         0.40,
					"helper-people":       0.30,
					"creative-maker":      0.20,
					"analyst-researcher":  0.40,
					"organizer-planner":   0.90,
					"hands-on-builder":    0.45,
					"care-support":        0.40,
					"leader-communicator": 0.50,
				},
			},
			{
				Value: "presenting-idea",
				Label: "Winning a room over to my idea",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":         0.25,
					"helper-people":       0.45,
					"creative-maker":      0.45,
					"analyst-researcher":  0.20,
					"organizer-planner":   0.35,
					"hands-on-builder":    0.15,
					"care-support":        0.20,
					"leader-communicator": 0.90,
				},
			},
			{
				Value: "building-physical",
				Label: "Building or repairing something physical",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":         0.45,
					"helper-people":       0.20,
					"creative-maker":      0.50,
					"analyst-researcher":  0.15,
					"organizer-planner":   0.25,
					"hands-on-builder":    0.90,
					"care-support":        0.25,
					"leader-communicator": 0.20,
				},
			},
		},
	},
	{
		ID:         "stage1_q3_environment",
		Kind:       KindMultipleChoice,
		Stage:      1,
		Prompt:     "Which working environment sounds most like home?",
		Difficulty: 1,
		Options: []Option{
			{
				Value: "quiet-focus",
				Label: "A quiet desk, long uninterrupted stretches, headphones on",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":         0.80,
					"helper-people":       0.20,
					"creative-maker":      0.55,
					"analyst-researcher":  0.85,
					"organizer-planner":   0.50,
					"hands-on-builder":    0.35,
					"care-support":        0.30,
					"leader-communicator": 0.15,
				},
			},
			{
				Value: "busy-people",
				Label: "A busy floor full of people coming and going",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":         0.20,
					"helper-people":       0.85,
					"creative-maker":      0.35,
					"analyst-researcher":  0.15,
					"organizer-planner":   0.45,
					"hands-on-builder":    0.30,
					"care-support":        0.75,
					"leader-communicator": 0.80,
				},
			},
			{
				Value: "workshop-floor",
				Label: "A workshop, lab or site — tools out, something taking shape",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":         0.50,
					"helper-people":       0.20,
					"creative-maker":      0.60,
					"analyst-researcher":  0.30,
					"organizer-planner":   0.25,
					"hands-on-builder":    0.90,
					"care-support":        0.30,
					"leader-communicator": 0.20,
				},
			},
		},
	},
	{
		ID:          "stage1_q4_structure",
		Kind:        KindScale,
		Stage:       1,
		Prompt:      "\"I would rather follow a clear plan than improvise.\" How much do you agree?",
		Description: "1 = strongly disagree, 5 = strongly agree",
		Difficulty:  1,
		Options: []Option{
			{
				Value: "1",
				Label: "Strongly disagree",
				ClusterLikelihoods: map[string]float64{
					"creative-maker":      0.85,
					"leader-communicator": 0.60,
					"organizer-planner":   0.10,
					"care-support":        0.30,
					"analyst-researcher":  0.40,
				},
			},
			{
				Value: "2",
				Label: "Disagree",
				ClusterLikelihoods: map[string]float64{
					"creative-maker":      0.70,
					"tech-solver":         0.55,
					"organizer-planner":   0.25,
					"leader-communicator": 0.55,
				},
			},
			{
				Value: "3",
				Label: "Neutral",
				ClusterLikelihoods: map[string]float64{
					"helper-people":    0.60,
					"hands-on-builder": 0.55,
				},
			},
			{
				Value: "4",
				Label: "Agree",
				ClusterLikelihoods: map[string]float64{
					"organizer-planner":  0.75,
					"analyst-researcher": 0.60,
					"care-support":       0.60,
					"creative-maker":     0.30,
				},
			},
			{
				Value: "5",
				Label: "Strongly agree",
				ClusterLikelihoods: map[string]float64{
					"organizer-planner":   0.90,
					"care-support":        0.65,
					"analyst-researcher":  0.50,
					"creative-maker":      0.15,
					"leader-communicator": 0.30,
				},
			},
		},
	},
	{
		ID:         "stage1_q5_problem",
		Kind:       KindMultipleChoice,
		Stage:      1,
		Prompt:     "A problem at work has everyone stuck. What is your first instinct?",
		Difficulty: 1,
		Options: []Option{
			{
				Value: "take-apart",
				Label: "Take it apart and trace where it actually breaks",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":         0.90,
					"analyst-researcher":  0.60,
					"hands-on-builder":    0.55,
					"helper-people":       0.20,
					"leader-communicator": 0.25,
					"care-support":        0.20,
				},
			},
			{
				Value: "ask-around",
				Label: "Talk to the people involved — someone knows something",
				ClusterLikelihoods: map[string]float64{
					"helper-people":       0.85,
					"leader-communicator": 0.75,
					"care-support":        0.60,
					"tech-solver":         0.20,
					"analyst-researcher":  0.20,
				},
			},
			{
				Value: "research-first",
				Label: "Collect the data and look for the pattern before acting",
				ClusterLikelihoods: map[string]float64{
					"analyst-researcher":  0.90,
					"tech-solver":         0.55,
					"organizer-planner":   0.55,
					"helper-people":       0.20,
					"hands-on-builder":    0.20,
					"leader-communicator": 0.25,
				},
			},
			{
				Value: "reframe-it",
				Label: "Step back and reframe — maybe we're solving the wrong problem",
				ClusterLikelihoods: map[string]float64{
					"creative-maker":      0.85,
					"leader-communicator": 0.55,
					"analyst-researcher":  0.45,
					"organizer-planner":   0.25,
					"hands-on-builder":    0.20,
				},
			},
		},
	},
	{
		ID:          "stage1_q6_hands",
		Kind:        KindScale,
		Stage:       1,
		Prompt:      "\"A good day's work leaves something I can physically point at.\" How much do you agree?",
		Description: "1 = strongly disagree, 5 = strongly agree",
		Difficulty:  1,
		Options: []Option{
			{
				Value: "1",
				Label: "Strongly disagree",
				ClusterLikelihoods: map[string]float64{
					"hands-on-builder":    0.10,
					"analyst-researcher":  0.65,
					"helper-people":       0.55,
					"leader-communicator": 0.55,
				},
			},
			{
				Value: "2",
				Label: "Disagree",
				ClusterLikelihoods: map[string]float64{
					"hands-on-builder":   0.25,
					"tech-solver":        0.50,
					"analyst-researcher": 0.55,
				},
			},
			{
				Value: "3",
				Label: "Neutral",
				ClusterLikelihoods: map[string]float64{
					"organizer-planner": 0.55,
					"care-support":      0.55,
				},
			},
			{
				Value: "4",
				Label: "Agree",
				ClusterLikelihoods: map[string]float64{
					"hands-on-builder": 0.70,
					"creative-maker":   0.60,
					"tech-solver":      0.45,
				},
			},
			{
				Value: "5",
				Label: "Strongly agree",
				ClusterLikelihoods: map[string]float64{
					"hands-on-builder":    0.90,
					"creative-maker":      0.55,
					"analyst-researcher":  0.15,
					"helper-people":       0.25,
					"leader-communicator": 0.20,
				},
			},
		},
	},
	{
		ID:         "stage1_q7_recognition",
		Kind:       KindMultipleChoice,
		Stage:      1,
		Prompt:     "Which compliment would mean the most to you?",
		Difficulty: 1,
		Options: []Option{
			{
				Value: "made-it-work",
				Label: "\"Nobody else could have made that work.\"",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":        0.85,
					"hands-on-builder":   0.65,
					"analyst-researcher": 0.45,
					"helper-people":      0.20,
					"care-support":       0.20,
				},
			},
			{
				Value: "felt-heard",
				Label: "\"Talking to you, I finally felt heard.\"",
				ClusterLikelihoods: map[string]float64{
					"helper-people":       0.90,
					"care-support":        0.85,
					"tech-solver":         0.15,
					"analyst-researcher":  0.15,
					"organizer-planner":   0.25,
					"leader-communicator": 0.45,
				},
			},
			{
				Value: "original-work",
				Label: "\"I've never seen anything quite like it.\"",
				ClusterLikelihoods: map[string]float64{
					"creative-maker":      0.90,
					"tech-solver":         0.35,
					"organizer-planner":   0.15,
					"care-support":        0.15,
					"analyst-researcher":  0.25,
					"leader-communicator": 0.35,
				},
			},
			{
				Value: "kept-together",
				Label: "\"Without you this whole thing would have fallen apart.\"",
				ClusterLikelihoods: map[string]float64{
					"organizer-planner":   0.85,
					"leader-communicator": 0.70,
					"care-support":        0.50,
					"creative-maker":      0.20,
					"analyst-researcher":  0.25,
				},
			},
		},
	},
	{
		ID:          "stage1_q8_people",
		Kind:        KindScale,
		Stage:       1,
		Prompt:      "\"Time with other people gives me energy rather than costing it.\" How much do you agree?",
		Description: "1 = strongly disagree, 5 = strongly agree",
		Difficulty:  1,
		Options: []Option{
			{
				Value: "1",
				Label: "Strongly disagree",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":         0.70,
					"analyst-researcher":  0.70,
					"helper-people":       0.10,
					"leader-communicator": 0.10,
					"care-support":        0.20,
				},
			},
			{
				Value: "2",
				Label: "Disagree",
				ClusterLikelihoods: map[string]float64{
					"tech-solver":         0.60,
					"analyst-researcher":  0.55,
					"creative-maker":      0.50,
					"helper-people":       0.20,
					"leader-communicator": 0.20,
				},
			},
			{
				Value: "3",
				Label: "Neutral",
				ClusterLikelihoods: map[string]float64{
					"organizer-planner": 0.55,
					"hands-on-builder":  0.55,
				},
			},
			{
				Value: "4",
				Label: "Agree",
				ClusterLikelihoods: map[string]float64{
					"helper-people":       0.70,
					"care-support":        0.65,
					"leader-communicator": 0.70,
					"tech-solver":         0.25,
					"analyst-researcher":  0.25,
				},
			},
			{
				Value: "5",
				Label: "Strongly agree",
				ClusterLikelihoods: map[string]float64{
					"helper-people":       0.90,
					"leader-communicator": 0.85,
					"care-support":        0.75,
					"tech-solver":         0.10,
					"analyst-researcher":  0.10,
					"hands-on-builder":    0.25,
				},
			},
		},
	},
}
