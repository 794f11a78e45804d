package knowledge

// Builtin returns the pre-indexed MOEMS knowledge base.
//
// This stands in for a document store in the demo: each topic carries
// the keyword set a production system would replace with embeddings,
// the reference answer, and the supporting snippets with their source
// labels. The returned slice is freshly allocated on every call, so a
// caller may edit it before handing it to New.
func Builtin() []Entry {
	return []Entry{
		{
			Topic:    "moems_overview",
			Keywords: []string{"what", "is", "moems"},
			Answer: "MOEMS stands for Mathematical Olympiads for Elementary and Middle Schools. " +
				"It is a mathematics competition designed for students in grades 4-8, providing an " +
				"engaging way for students to develop problem-solving skills through challenging " +
				"mathematical problems.",
			Sources: []string{"moems_overview", "moems_introduction"},
			Documents: []Document{
				{
					Content: "MOEMS stands for Mathematical Olympiads for Elementary and Middle Schools. " +
						"It is a mathematics competition designed for students in grades 4-8.",
					Source: "moems_overview",
				},
				{
					Content: "MOEMS provides an engaging way for students to develop problem-solving " +
						"skills through challenging mathematical problems.",
					Source: "moems_introduction",
				},
			},
		},
		{
			Topic:    "contest_structure",
			Keywords: []string{"contest", "structure", "format"},
			Answer: "Each MOEMS contest consists of exactly 5 problems. Students have 30 minutes " +
				"total to complete all 5 problems. Calculators are strictly prohibited during the " +
				"contest, emphasizing mental math and problem-solving skills.",
			Sources: []string{"moems_structure", "moems_rules"},
			Documents: []Document{
				{
					Content: "Each MOEMS contest consists of exactly 5 problems. Students have " +
						"30 minutes total to complete all 5 problems.",
					Source: "moems_structure",
				},
				{
					Content: "Calculators are strictly prohibited during MOEMS contests, emphasizing " +
						"mental math and problem-solving skills.",
					Source: "moems_rules",
				},
			},
		},
		{
			Topic:    "eligibility",
			Keywords: []string{"who", "can", "participate", "eligibility"},
			Answer: "Students in grades 4 through 8 can participate in MOEMS. This includes both " +
				"elementary school students (grades 4-5) and middle school students (grades 6-8). " +
				"The competition is appropriate for students aged approximately 9-14 years old.",
			Sources: []string{"moems_eligibility"},
			Documents: []Document{
				{
					Content: "Students in grades 4 through 8 can participate in MOEMS. This includes " +
						"both elementary and middle school students (grades 4-5 for elementary, 6-8 for " +
						"middle school). Appropriate for ages 9-14.",
					Source: "moems_eligibility",
				},
			},
		},
		{
			Topic:    "scoring",
			Keywords: []string{"scored", "scoring", "points"},
			Answer: "Each problem in a MOEMS contest is worth 1 point. The maximum score for a " +
				"single contest is 5 points (one for each problem). Teams compete based on cumulative " +
				"scores across multiple contests throughout the year.",
			Sources: []string{"moems_scoring"},
			Documents: []Document{
				{
					Content: "Each problem is worth 1 point. Maximum score per contest is 5 points. " +
						"Teams compete based on cumulative scores across multiple contests.",
					Source: "moems_scoring",
				},
			},
		},
		{
			Topic:    "calculator_rules",
			Keywords: []string{"calculators", "allowed"},
			Answer: "No, calculators are not allowed in MOEMS contests. Calculators are strictly " +
				"prohibited. The competition emphasizes mental math and problem-solving skills " +
				"without computational aids.",
			Sources: []string{"moems_rules"},
			Documents: []Document{
				{
					Content: "Calculators are strictly prohibited in MOEMS contests. The competition " +
						"emphasizes mental math and problem-solving skills without computational aids.",
					Source: "moems_rules",
				},
			},
		},
		{
			Topic:    "sample_problem",
			Keywords: []string{"example", "sample", "problem"},
			Answer: "Here's a sample MOEMS algebra problem: If 3x + 7 = 22, what is the value of x? " +
				"Solution: x = 5. To solve, subtract 7 from both sides to get 3x = 15, then divide by " +
				"3 to get x = 5. This type of problem tests students' ability to isolate variables " +
				"and perform basic algebraic operations.",
			Sources: []string{"moems_examples"},
			Documents: []Document{
				{
					Content: "Sample Problem: If 3x + 7 = 22, what is x? Solution: Subtract 7 from " +
						"both sides: 3x = 15, then divide by 3 to get x = 5. Tests variable isolation " +
						"and basic algebra.",
					Source: "moems_examples",
				},
			},
		},
		{
			Topic:    "strategies",
			Keywords: []string{"strategies", "time", "management"},
			Answer: "Given the 30-minute time limit for 5 problems, students have an average of " +
				"6 minutes per problem. Recommended strategy: (1) Quickly read all 5 problems first " +
				"(2 minutes), (2) Start with problems that seem easiest (10 minutes for 2-3 problems), " +
				"(3) Work on medium difficulty problems next (10 minutes), (4) Attempt challenging " +
				"problems last (8 minutes). Time management is crucial for success in MOEMS competitions.",
			Sources: []string{"moems_strategies"},
			Documents: []Document{
				{
					Content: "Time management strategy: Average 6 minutes per problem. (1) Read all " +
						"problems first (2 min), (2) Start with easiest (10 min), (3) Work on medium " +
						"difficulty (10 min), (4) Attempt hardest last (8 min).",
					Source: "moems_strategies",
				},
			},
		},
		{
			Topic:    "time_limits",
			Keywords: []string{"how", "long", "minutes", "time"},
			Answer: "Students have 30 minutes total to complete all 5 problems in a MOEMS contest. " +
				"This works out to an average of 6 minutes per problem, though students are free to " +
				"allocate their time as they see fit across the problems.",
			Sources: []string{"moems_structure"},
			Documents: []Document{
				{
					Content: "30 minutes total for all 5 problems. Average of 6 minutes per problem, " +
						"though time can be allocated as needed.",
					Source: "moems_structure",
				},
			},
		},
		{
			Topic:    "third_grade_exception",
			Keywords: []string{"third", "3rd", "grader", "advanced"},
			Answer: "MOEMS is officially designed for grades 4-8. While the standard eligibility is " +
				"grades 4-8, exceptional cases such as an advanced 3rd grader may be handled on a " +
				"case-by-case basis by contacting MOEMS organizers directly. The competition content " +
				"is generally geared toward the cognitive development of students in the 4-8 grade range.",
			Sources: []string{"moems_eligibility", "moems_eligibility_exceptions"},
			Documents: []Document{
				{
					Content: "MOEMS is designed for grades 4-8.",
					Source:  "moems_eligibility",
				},
				{
					Content: "Standard eligibility is grades 4-8. Exceptional cases such as advanced " +
						"3rd graders may be handled case-by-case by contacting organizers. Content is " +
						"geared toward 4-8 grade cognitive development.",
					Source: "moems_eligibility_exceptions",
				},
			},
		},
	}
}
