// Package query selects records with expressions.
//
// Expressions are written in the expr language and evaluated once per
// record against an [Env]:
//
//	keyword == "FIELD_DEF" && num(attrs.field_monitor_units) > 100
//	keyword == "CONTROL_PT_DEF" && index == 0
//	depth <= 1
package query
