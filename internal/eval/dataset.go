package eval

// BuiltinDataset returns the fixed MOEMS evaluation dataset: eight
// questions with ground-truth answers and the sources a correct
// retrieval should surface. The slice is freshly allocated per call.
func BuiltinDataset() []Example {
	return []Example{
		{
			Query: "What is MOEMS?",
			ExpectedAnswer: "MOEMS stands for Mathematical Olympiads for Elementary and Middle " +
				"Schools, a mathematics competition for students in grades 4-8 that helps develop " +
				"problem-solving skills.",
			ExpectedSources: []string{"moems_overview", "moems_introduction"},
		},
		{
			Query: "What is the structure of a MOEMS contest?",
			ExpectedAnswer: "Each MOEMS contest consists of 5 problems to be completed in " +
				"30 minutes total, with calculators prohibited.",
			ExpectedSources: []string{"moems_structure", "moems_rules"},
		},
		{
			Query: "Who can participate in MOEMS?",
			ExpectedAnswer: "Students in grades 4-8 (elementary and middle school) can participate. " +
				"Exceptional 3rd graders may participate on a case-by-case basis.",
			ExpectedSources: []string{"moems_eligibility"},
		},
		{
			Query: "How is MOEMS scored?",
			ExpectedAnswer: "Each problem is worth 1 point, for a maximum of 5 points per contest. " +
				"Teams compete based on cumulative scores.",
			ExpectedSources: []string{"moems_scoring"},
		},
		{
			Query: "Are calculators allowed in MOEMS?",
			ExpectedAnswer: "No, calculators are strictly prohibited in MOEMS contests to " +
				"emphasize mental math and problem-solving skills.",
			ExpectedSources: []string{"moems_rules"},
		},
		{
			Query: "How much time do students have for each problem?",
			ExpectedAnswer: "Students have 30 minutes total for 5 problems, averaging 6 minutes " +
				"per problem, though they can allocate time as needed.",
			ExpectedSources: []string{"moems_structure"},
		},
		{
			Query: "What strategies should students use for time management?",
			ExpectedAnswer: "Read all problems first (2 min), start with easiest (10 min), work on " +
				"medium difficulty (10 min), attempt hardest last (8 min).",
			ExpectedSources: []string{"moems_strategies"},
		},
		{
			Query: "Can a 3rd grader participate in MOEMS?",
			ExpectedAnswer: "MOEMS is designed for grades 4-8, but exceptional 3rd graders may " +
				"participate on a case-by-case basis by contacting organizers.",
			ExpectedSources: []string{"moems_eligibility", "moems_eligibility_exceptions"},
		},
	}
}
