// Package domain contains the result entities shared by the calculator
// service, the CLI and the HTTP API. Besides their jx encoders they carry no
// logic, so any presentation layer can render them.
package domain
