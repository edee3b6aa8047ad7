package aarch64

import "encoding/json"

// DefaultServer is the public aarch64.com console API.
const DefaultServer = "https://console.aarch64.com/api"

// Endpoint paths relative to the server base URL.
const (
	pathProjects       = "/projects"
	pathProjectCreate  = "/project"
	pathProjectAddUser = "/project/adduser"
	pathVMCreate       = "/vms/create"
	pathVMDelete       = "/vms/delete"
	pathSystem         = "/system"
)

// Meta is the status header carried by every API response.
type Meta struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// envelope is the standard response wrapper {meta, data}.
type envelope struct {
	Meta Meta            `json:"meta"`
	Data json.RawMessage `json:"data"`
}

// Project is the subset of a project document the client decodes.
// Everything else in the document is ignored.
type Project struct {
	ID   string `json:"_id" yaml:"_id"`
	Name string `json:"name" yaml:"name"`
}

type createProjectRequest struct {
	Name string `json:"name"`
}

type addUserRequest struct {
	Project string `json:"project"`
	Email   string `json:"email"`
}

type createVMRequest struct {
	Hostname string `json:"hostname"`
	POP      string `json:"pop"`
	Project  string `json:"project"`
	Plan     string `json:"plan"`
	OS       string `json:"os"`
}

type deleteVMRequest struct {
	VM string `json:"vm"`
}
