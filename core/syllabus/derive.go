package syllabus

// TotalDuration returns the sum, in minutes, of every topic's duration
// across all units. An empty unit list yields 0.
func TotalDuration(units []Unit) int {
	var total int
	for _, unit := range units {
		for _, topic := range unit.Topics {
			total += topic.Duration
		}
	}
	return total
}

// ImportantTopics reduces units to the topics worth a short focused self-test:
// those flagged important, plus high-weight topics that aren't hard. Units
// left with no topics are dropped. Unit and topic order is preserved.
func ImportantTopics(units []Unit) []Unit {
	reduced := make([]Unit, 0, len(units))
	for _, unit := range units {
		topics := make([]Topic, 0, len(unit.Topics))
		for _, topic := range unit.Topics {
			if topic.IsImportant || (topic.Weightage >= 7 && topic.Difficulty != DifficultyHard) {
				topics = append(topics, topic)
			}
		}
		if len(topics) == 0 {
			continue
		}
		unit.Topics = topics
		reduced = append(reduced, unit)
	}
	return reduced
}
