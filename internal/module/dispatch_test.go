package module_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/natesales/ansible-module-aarch64-vm/internal/aarch64"
	"github.com/natesales/ansible-module-aarch64-vm/internal/module"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type consoleResponse struct {
	status int
	body   string
}

// fakeConsole fakes the console API and records every request hitting it
type fakeConsole struct {
	mu        sync.Mutex
	requests  []string
	responses map[string]consoleResponse
	server    *httptest.Server
}

func newFakeConsole() *fakeConsole {
	f := &fakeConsole{
		responses: make(map[string]consoleResponse),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

func (f *fakeConsole) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path

	f.mu.Lock()
	f.requests = append(f.requests, key)
	resp, ok := f.responses[key]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if resp.status != http.StatusOK {
		w.WriteHeader(resp.status)
		return
	}
	w.Write([]byte(resp.body))
}

func (f *fakeConsole) respond(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[method+" "+path] = consoleResponse{status: status, body: body}
}

func (f *fakeConsole) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *fakeConsole) Close() {
	f.server.Close()
}

func mustParams(args string) *module.Params {
	params, err := module.ParseArgs([]byte(args))
	Expect(err).NotTo(HaveOccurred())
	return params
}

var _ = Describe("VM state dispatch", func() {
	var (
		console *fakeConsole
		client  *aarch64.Client
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		console = newFakeConsole()
		client = aarch64.NewClient("test-key", aarch64.WithServer(console.server.URL))
	})

	AfterEach(func() {
		console.Close()
	})

	Context("state present", func() {
		BeforeEach(func() {
			console.respond(http.MethodGet, "/projects", http.StatusOK,
				`{"meta":{"success":true,"message":"ok"},"data":[{"_id":"proj1","name":"Infra"},{"_id":"proj2","name":"Mirrors"}]}`)
			console.respond(http.MethodPost, "/vms/create", http.StatusOK,
				`{"meta":{"success":true,"message":"Created VM"},"data":{"_id":"vm-abc123","hostname":"mirror1","pop":"dfw"}}`)
		})

		It("should create the VM when the project exists", func() {
			params := mustParams(`{
				"api_key": "test-key",
				"state": "present",
				"project": "proj1",
				"hostname": "mirror1",
				"plan": "v1.medium",
				"os": "debian",
				"pop": "dfw"
			}`)

			result := module.Run(ctx, client, params)

			Expect(result.Failed).To(BeFalse())
			Expect(result.Changed).To(BeTrue())
			Expect(result.Message).To(Equal("Created VM"))
			Expect(result.VM).To(MatchJSON(`{"_id":"vm-abc123","hostname":"mirror1","pop":"dfw"}`))
			Expect(console.recorded()).To(Equal([]string{
				"GET /projects",
				"POST /vms/create",
			}))
		})

		It("should default to present when state is omitted", func() {
			params := mustParams(`{
				"api_key": "test-key",
				"project": "proj2",
				"hostname": "mirror2",
				"plan": "v1.small",
				"os": "ubuntu",
				"pop": "dfw"
			}`)

			result := module.Run(ctx, client, params)

			Expect(result.Failed).To(BeFalse())
			Expect(result.Changed).To(BeTrue())
			Expect(console.recorded()).To(ContainElement("POST /vms/create"))
		})

		It("should fail without creating when the project is missing", func() {
			params := mustParams(`{
				"api_key": "test-key",
				"state": "present",
				"project": "proj404",
				"hostname": "mirror1",
				"plan": "v1.medium",
				"os": "debian",
				"pop": "dfw"
			}`)

			result := module.Run(ctx, client, params)

			Expect(result.Failed).To(BeTrue())
			Expect(result.Changed).To(BeFalse())
			Expect(result.Msg).To(Equal("Unable to find project with id proj404"))
			Expect(console.recorded()).To(Equal([]string{"GET /projects"}))
		})

		It("should report the API message when creation is rejected", func() {
			console.respond(http.MethodPost, "/vms/create", http.StatusOK,
				`{"meta":{"success":false,"message":"Invalid OS. Check /system for available distributions."},"data":null}`)

			params := mustParams(`{
				"api_key": "test-key",
				"state": "present",
				"project": "proj1",
				"hostname": "mirror1",
				"plan": "v1.medium",
				"os": "plan9",
				"pop": "dfw"
			}`)

			result := module.Run(ctx, client, params)

			Expect(result.Failed).To(BeTrue())
			Expect(result.Changed).To(BeFalse())
			Expect(result.Msg).To(Equal("Unable to create VM: Invalid OS. Check /system for available distributions."))
		})

		It("should report transport failures listing projects", func() {
			console.respond(http.MethodGet, "/projects", http.StatusInternalServerError, "")

			params := mustParams(`{
				"api_key": "test-key",
				"state": "present",
				"project": "proj1",
				"hostname": "mirror1",
				"plan": "v1.medium",
				"os": "debian",
				"pop": "dfw"
			}`)

			result := module.Run(ctx, client, params)

			Expect(result.Failed).To(BeTrue())
			Expect(result.Msg).To(Equal("Unable to get projects: API returned HTTP 500"))
			Expect(console.recorded()).To(Equal([]string{"GET /projects"}))
		})
	})

	Context("state absent", func() {
		BeforeEach(func() {
			console.respond(http.MethodDelete, "/vms/delete", http.StatusOK,
				`{"meta":{"success":true,"message":"Deleted VM"},"data":null}`)
		})

		It("should delete the VM by id", func() {
			params := mustParams(`{
				"api_key": "test-key",
				"state": "absent",
				"id": "vm-abc123"
			}`)

			result := module.Run(ctx, client, params)

			Expect(result.Failed).To(BeFalse())
			Expect(result.Changed).To(BeTrue())
			Expect(result.Message).To(Equal("Deleted VM"))
			Expect(result.VM).To(BeEmpty())
			Expect(console.recorded()).To(Equal([]string{"DELETE /vms/delete"}))
		})

		It("should report the API message when deletion is rejected", func() {
			console.respond(http.MethodDelete, "/vms/delete", http.StatusOK,
				`{"meta":{"success":false,"message":"That VM does not exist"},"data":null}`)

			params := mustParams(`{
				"api_key": "test-key",
				"state": "absent",
				"id": "vm-gone"
			}`)

			result := module.Run(ctx, client, params)

			Expect(result.Failed).To(BeTrue())
			Expect(result.Changed).To(BeFalse())
			Expect(result.Msg).To(Equal("Unable to delete VM: That VM does not exist"))
		})

		It("should never touch the project listing", func() {
			params := mustParams(`{
				"api_key": "test-key",
				"state": "absent",
				"id": "vm-abc123"
			}`)

			module.Run(ctx, client, params)

			Expect(console.recorded()).NotTo(ContainElement("GET /projects"))
		})
	})
})
