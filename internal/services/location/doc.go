// Package location performs single location lookups against the gateway.
//
// Each Fetch makes exactly one gateway call. Whatever the outcome, the session
// the gateway hands back is written to the SessionStore before Fetch returns,
// since tokens may rotate on failed calls too. Only a found report is written
// to the ReportStore and, when configured, appended to the history.
package location
