package suggestion

// Seed provides the default prompt shortcuts shown to the user.
// The list is fixed at four entries; the frontend renders them verbatim.
func Seed() []string {
	return []string{
		"Hello!",
		"Who are you?",
		"Tell me about the company",
		"What can you help me with?",
	}
}
