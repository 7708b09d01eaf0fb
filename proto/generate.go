// Package proto holds the service definitions. Generated code lands in
// gen/proto via go generate.
package proto

//go:generate protoc -I . --go_out=paths=source_relative:../gen/proto --go-grpc_out=paths=source_relative:../gen/proto invoices/v1/invoices.proto
