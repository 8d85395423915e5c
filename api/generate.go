// Package api holds the interface description files for the taskmesh RPC
// modules (protos/) and the stubs the compiler generates from them (gen/).
//
// The gen/ tree is build output: never hand-edited, regenerable at any time
// from protos/ via the generation manifest at the repository root:
//
//	go generate ./api
//	go run ./cmd/protokit verify
package api

//go:generate go run github.com/taskmesh/protokit/cmd/protokit generate --config=../protokit.yaml
