// Package logadapter adapts common logging libraries to the RequestLogger
// interface of the Notion client.
package logadapter
