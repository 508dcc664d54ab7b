// Package metrics collects and exposes Prometheus metrics for the blog API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the service layer reports to.
type Recorder interface {
	RecordLogin(success bool)
	RecordDecision(action string, allowed bool)
	RecordAccountCreated(tier string)
	RecordPostWrite(op string)
}

// Collector is the Prometheus backed Recorder.
type Collector struct {
	logins   *prometheus.CounterVec
	decision *prometheus.CounterVec
	accounts *prometheus.CounterVec
	posts    *prometheus.CounterVec
}

// NewCollector creates a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "inkwell_logins_total",
			Help: "Password logins by outcome.",
		}, []string{"outcome"}),
		decision: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "inkwell_access_decisions_total",
			Help: "Access decisions by action and outcome.",
		}, []string{"action", "outcome"}),
		accounts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "inkwell_accounts_created_total",
			Help: "Accounts created by tier.",
		}, []string{"tier"}),
		posts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "inkwell_post_writes_total",
			Help: "Post writes by operation.",
		}, []string{"op"}),
	}

	reg.MustRegister(c.logins, c.decision, c.accounts, c.posts)
	return c
}

func outcome(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}

func (c *Collector) RecordLogin(success bool) {
	c.logins.WithLabelValues(outcome(success, "success", "failure")).Inc()
}

func (c *Collector) RecordDecision(action string, allowed bool) {
	c.decision.WithLabelValues(action, outcome(allowed, "allow", "deny")).Inc()
}

func (c *Collector) RecordAccountCreated(tier string) {
	c.accounts.WithLabelValues(tier).Inc()
}

func (c *Collector) RecordPostWrite(op string) {
	c.posts.WithLabelValues(op).Inc()
}

// Noop discards everything. It is the default when no collector is wired.
type Noop struct{}

func (Noop) RecordLogin(bool)            {}
func (Noop) RecordDecision(string, bool) {}
func (Noop) RecordAccountCreated(string) {}
func (Noop) RecordPostWrite(string)      {}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
