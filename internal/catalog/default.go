package catalog

// Default returns the fixed battery shipped with the bot: three demographic
// questions followed by twenty scored statements, four per category.
// Scored IDs use the full `strength_NN` form everywhere; nothing downstream
// strips or re-derives them.
func Default() *Catalog {
	demographic := []Question{
		{ID: "demo_name", Text: "Let's get to know each other. What is your name?"},
		{ID: "demo_age", Text: "How old are you?"},
		{ID: "demo_occupation", Text: "What do you do for a living (work, study, something else)?"},
	}

	scored := []Question{
		// analytical
		{ID: "strength_01", Category: CategoryAnalytical, Text: "I enjoy breaking complex problems into smaller parts."},
		{ID: "strength_02", Category: CategoryAnalytical, Text: "I double-check facts before accepting a conclusion."},
		{ID: "strength_03", Category: CategoryAnalytical, Text: "I notice patterns in data that others tend to miss."},
		{ID: "strength_04", Category: CategoryAnalytical, Text: "I prefer decisions backed by evidence over gut feeling."},

		// creative
		{ID: "strength_05", Category: CategoryCreative, Text: "I often come up with ideas nobody around me suggested."},
		{ID: "strength_06", Category: CategoryCreative, Text: "I like finding unusual uses for ordinary things."},
		{ID: "strength_07", Category: CategoryCreative, Text: "Improvising when plans fall apart energizes me."},
		{ID: "strength_08", Category: CategoryCreative, Text: "I enjoy expressing myself through writing, art or design."},

		// social
		{ID: "strength_09", Category: CategorySocial, Text: "People come to me when they need someone to listen."},
		{ID: "strength_10", Category: CategorySocial, Text: "I easily sense how others are feeling in a conversation."},
		{ID: "strength_11", Category: CategorySocial, Text: "I enjoy meeting and getting to know new people."},
		{ID: "strength_12", Category: CategorySocial, Text: "I can smooth over conflicts between people."},

		// leadership
		{ID: "strength_13", Category: CategoryLeadership, Text: "I naturally take charge when a group lacks direction."},
		{ID: "strength_14", Category: CategoryLeadership, Text: "I am comfortable making decisions that affect others."},
		{ID: "strength_15", Category: CategoryLeadership, Text: "I can get people excited about a shared goal."},
		{ID: "strength_16", Category: CategoryLeadership, Text: "I give honest feedback even when it is uncomfortable."},

		// discipline
		{ID: "strength_17", Category: CategoryDiscipline, Text: "I finish what I start, even when motivation fades."},
		{ID: "strength_18", Category: CategoryDiscipline, Text: "I keep my commitments without needing reminders."},
		{ID: "strength_19", Category: CategoryDiscipline, Text: "I work steadily rather than in last-minute bursts."},
		{ID: "strength_20", Category: CategoryDiscipline, Text: "I maintain routines that support my long-term goals."},
	}

	c, err := New(demographic, scored)
	if err != nil {
		// The default battery is a compile-time constant; failing to build it
		// is a programming error, not a runtime condition.
		panic(err)
	}
	return c
}

const (
	CategoryAnalytical = "analytical"
	CategoryCreative   = "creative"
	CategorySocial     = "social"
	CategoryLeadership = "leadership"
	CategoryDiscipline = "discipline"
)
