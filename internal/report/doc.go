// Package report renders scan reports for the command line.
//
// Four formats are supported: json and yaml for tooling, markdown for sharing
// and text for a colored terminal summary. Every writer renders only the
// sections present in the report, so a single-check run prints one section.
package report
