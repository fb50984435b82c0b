package logging

import (
	"time"
)

// =============================================================================
// AUDIT EVENT TYPES
// =============================================================================

// AuditEventType names one kind of analysis decision.
type AuditEventType string

const (
	// Query lifecycle
	AuditQueryRejected   AuditEventType = "query_rejected"
	AuditQueryClassified AuditEventType = "query_classified"

	// Match outcomes
	AuditMatchAccepted AuditEventType = "match_accepted"
	AuditMatchVetoed   AuditEventType = "match_vetoed"
	AuditFallbackUsed  AuditEventType = "fallback_used"
	AuditFallbackFault AuditEventType = "fallback_fault"

	// Corpus loading
	AuditCorpusLoaded   AuditEventType = "corpus_loaded"
	AuditCorpusDegraded AuditEventType = "corpus_degraded"
)

// AuditEvent is one structured decision record.
type AuditEvent struct {
	EventType  AuditEventType
	RequestID  string
	Corpus     string
	Score      int
	Confidence float64
	DurationMs int64
	Success    bool
	Error      string
	Message    string
	Fields     map[string]interface{}
}

// AuditLogger writes audit events to the audit category.
type AuditLogger struct {
	requestID string
}

// Audit returns an unscoped audit logger.
func Audit() *AuditLogger {
	return &AuditLogger{}
}

// AuditWithRequest scopes audit events to one request.
func AuditWithRequest(requestID string) *AuditLogger {
	return &AuditLogger{requestID: requestID}
}

// Log writes an audit event
func (a *AuditLogger) Log(event AuditEvent) {
	if event.RequestID == "" {
		event.RequestID = a.requestID
	}
	kv := []interface{}{
		"event", string(event.EventType),
		"success", event.Success,
	}
	if event.RequestID != "" {
		kv = append(kv, "req", event.RequestID)
	}
	if event.Corpus != "" {
		kv = append(kv, "corpus", event.Corpus)
	}
	if event.Score != 0 {
		kv = append(kv, "score", event.Score)
	}
	if event.Confidence != 0 {
		kv = append(kv, "confidence", event.Confidence)
	}
	if event.DurationMs != 0 {
		kv = append(kv, "dur_ms", event.DurationMs)
	}
	if event.Error != "" {
		kv = append(kv, "error", event.Error)
	}
	for k, v := range event.Fields {
		kv = append(kv, k, v)
	}
	msg := event.Message
	if msg == "" {
		msg = string(event.EventType)
	}
	Get(CategoryAudit).sugar.Infow(msg, kv...)
}

// =============================================================================
// CONVENIENCE METHODS
// =============================================================================

func (a *AuditLogger) QueryRejected(source, reason string) {
	a.Log(AuditEvent{
		EventType: AuditQueryRejected,
		Message:   reason,
		Fields:    map[string]interface{}{"source": source},
	})
}

func (a *AuditLogger) QueryClassified(strict bool, threshold, words, lines int) {
	a.Log(AuditEvent{
		EventType: AuditQueryClassified,
		Success:   true,
		Fields: map[string]interface{}{
			"strict":    strict,
			"threshold": threshold,
			"words":     words,
			"lines":     lines,
		},
	})
}

func (a *AuditLogger) MatchAccepted(corpus, number string, raw int, boost float64) {
	a.Log(AuditEvent{
		EventType:  AuditMatchAccepted,
		Corpus:     corpus,
		Score:      raw,
		Confidence: float64(raw) / 100,
		Success:    true,
		Fields:     map[string]interface{}{"number": number, "boost": boost},
	})
}

func (a *AuditLogger) MatchVetoed(corpus string, raw int) {
	a.Log(AuditEvent{
		EventType: AuditMatchVetoed,
		Corpus:    corpus,
		Score:     raw,
		Message:   "strict query below acceptance score",
	})
}

func (a *AuditLogger) FallbackUsed(sentiment string, glossHits int) {
	a.Log(AuditEvent{
		EventType: AuditFallbackUsed,
		Success:   true,
		Fields:    map[string]interface{}{"sentiment": sentiment, "gloss_hits": glossHits},
	})
}

func (a *AuditLogger) FallbackFault(err string) {
	a.Log(AuditEvent{EventType: AuditFallbackFault, Error: err})
}

func (a *AuditLogger) CorpusLoaded(corpus string, verses int, elapsed time.Duration) {
	a.Log(AuditEvent{
		EventType:  AuditCorpusLoaded,
		Corpus:     corpus,
		DurationMs: elapsed.Milliseconds(),
		Success:    true,
		Fields:     map[string]interface{}{"verses": verses},
	})
}

func (a *AuditLogger) CorpusDegraded(corpus string, err error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	a.Log(AuditEvent{EventType: AuditCorpusDegraded, Corpus: corpus, Error: msg})
}
