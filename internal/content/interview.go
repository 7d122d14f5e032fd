// Package content holds the static interview-practice catalogue. The sets
// ship with the binary so the practice pages work without any store access.
package content

type Question struct {
	Prompt string `json:"prompt"`
	Hint   string `json:"hint,omitempty"`
}

type QuestionSet struct {
	Slug       string     `json:"slug"`
	Title      string     `json:"title"`
	Category   string     `json:"category"`
	Difficulty string     `json:"difficulty"`
	Questions  []Question `json:"questions"`
}

var questionSets = []QuestionSet{
	{
		Slug:       "behavioral-basics",
		Title:      "Behavioral Basics",
		Category:   "Behavioral",
		Difficulty: "Beginner",
		Questions: []Question{
			{Prompt: "Tell me about yourself.", Hint: "Keep it to two minutes: background, current focus, why this role."},
			{Prompt: "Describe a time you disagreed with a teammate. How did you resolve it?", Hint: "Use the STAR structure and end with what changed."},
			{Prompt: "What is your biggest professional weakness?", Hint: "Pick a real one and show the mitigation you practice."},
			{Prompt: "Why do you want to work here?"},
		},
	},
	{
		Slug:       "data-structures",
		Title:      "Data Structures Warm-up",
		Category:   "Technical",
		Difficulty: "Intermediate",
		Questions: []Question{
			{Prompt: "When would you prefer a hash map over a balanced tree?", Hint: "Think about ordering guarantees and worst-case lookups."},
			{Prompt: "Explain how you would detect a cycle in a linked list."},
			{Prompt: "What trade-offs does a ring buffer make versus a growable slice?"},
			{Prompt: "Implement an LRU cache. Which operations must be O(1)?", Hint: "A map plus a doubly linked list covers both."},
		},
	},
	{
		Slug:       "system-design-intro",
		Title:      "System Design Introduction",
		Category:   "Technical",
		Difficulty: "Advanced",
		Questions: []Question{
			{Prompt: "Design a URL shortener. Walk through the write and read paths."},
			{Prompt: "How would you rate-limit an API shared by thousands of clients?", Hint: "Compare fixed window, sliding window, and token bucket."},
			{Prompt: "Where would you put a cache in a read-heavy service, and what invalidation strategy fits?"},
		},
	},
	{
		Slug:       "salary-negotiation",
		Title:      "Offer and Salary Negotiation",
		Category:   "Career",
		Difficulty: "Beginner",
		Questions: []Question{
			{Prompt: "What are your salary expectations?", Hint: "Give a researched range, not a single number."},
			{Prompt: "You received a competing offer. How do you bring it up?"},
			{Prompt: "Which parts of an offer besides base salary are negotiable?"},
		},
	},
}

func Sets() []QuestionSet {
	out := make([]QuestionSet, len(questionSets))
	copy(out, questionSets)
	return out
}

func SetBySlug(slug string) (QuestionSet, bool) {
	for _, s := range questionSets {
		if s.Slug == slug {
			return s, true
		}
	}
	return QuestionSet{}, false
}
