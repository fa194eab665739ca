package assessment

// History is the append-only, chronological record of a domain's
// responses. Insertion order is answer order.
type History struct {
	Responses []Response `json:"responses"`
}

// Append adds a response to the end of the history.
func (h *History) Append(r Response) {
	h.Responses = append(h.Responses, r)
}

// Len returns the number of recorded responses.
func (h *History) Len() int {
	return len(h.Responses)
}

// Last returns up to n most recent responses, oldest first.
func (h *History) Last(n int) []Response {
	if n <= 0 || len(h.Responses) == 0 {
		return nil
	}
	if n > len(h.Responses) {
		n = len(h.Responses)
	}
	return h.Responses[len(h.Responses)-n:]
}

// RecentCorrect counts correct answers among the last n responses.
func (h *History) RecentCorrect(n int) int {
	count := 0
	for _, r := range h.Last(n) {
		if r.Correct {
			count++
		}
	}
	return count
}

// TotalTime returns the sum of all recorded response times in seconds.
func (h *History) TotalTime() float64 {
	total := 0.0
	for _, r := range h.Responses {
		total += r.ResponseTime
	}
	return total
}
