package batch

// Package batch turns pasted text into download jobs and runs them: the input
// collector normalizes URLs, the dispatcher validates a request and fans out one
// worker per job, and the aggregator records results until the batch completes.
