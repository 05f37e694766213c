// Package main is the entry point for the console calculator.
//
// The calculator prompts for a first number, an operator and a second
// number, then prints "Result: <value>" or "Error: <message>". The numeric
// type decides which operators are available:
//
//	int, long           + - * / % ^
//	float               + - * / %
//	double, decimal     + - * /
//
// Configuration:
//   - Environment variables: CALC_TYPE, CALC_FORMAT, LOG_LEVEL, LOG_DEV, CALC_METRICS
//   - CLI flags (override env vars)
//
// Usage:
//
//	# Single double-precision evaluation
//	./calculator
//
//	# 32-bit integers, JSON output, until EOF
//	./calculator -type int -format json -loop
//
//	# Show what a type supports
//	./calculator -type decimal -list
//
// Logs are written to stderr. The exit status is 0 whenever the session
// starts, even if a calculation fails.
package main
