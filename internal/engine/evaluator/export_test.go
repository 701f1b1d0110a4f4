package evaluator

// SetWorkers overrides the scan concurrency limit.
func (e *Evaluator) SetWorkers(n int) {
	e.workers = n
}
