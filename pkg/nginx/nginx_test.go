package nginx_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	"github.com/charlessiwelejalusi/jalusi-aws-handler/pkg/nginx"
)

var _ = Describe("Render", func() {
	const targetIP = "203.0.113.50"

	It("rewrites every distinct upstream address and counts occurrences", func() {
		template := `upstream backend {
    server 198.51.100.10:8000;
    server 198.51.100.11:8000;
}
server {
    listen 80;
    proxy_pass http://198.51.100.10:8000;
}
`
		result := nginx.Render(template, targetIP)
		Expect(result.Replaced).To(HaveLen(2))
		Expect(result.Replaced["198.51.100.10"]).To(Equal(2))
		Expect(result.Replaced["198.51.100.11"]).To(Equal(1))
		Expect(result.TotalReplacements()).To(Equal(3))
		Expect(result.Output).NotTo(ContainSubstring("198.51.100."))
		Expect(result.Output).To(ContainSubstring(targetIP + ":8000"))
	})

	It("never touches loopback or wildcard addresses", func() {
		template := `server {
    listen 0.0.0.0:80;
    proxy_pass http://127.0.0.1:8000;
    server_name localhost;
}
`
		result := nginx.Render(template, targetIP)
		Expect(result.Replaced).To(BeEmpty())
		Expect(result.Output).To(Equal(template))
	})

	It("ignores dotted quads with out-of-range octets", func() {
		result := nginx.Render("# version 999.999.999.999 marker", targetIP)
		Expect(result.Replaced).To(BeEmpty())
		Expect(result.Output).To(ContainSubstring("999.999.999.999"))
	})

	It("does not count addresses already pointing at the target", func() {
		result := nginx.Render("proxy_pass http://"+targetIP+":8000;", targetIP)
		Expect(result.Replaced).To(BeEmpty())
	})

	It("rewrites addresses inside comments too", func() {
		result := nginx.Render("# old host was 198.51.100.10", targetIP)
		Expect(result.Replaced["198.51.100.10"]).To(Equal(1))
	})
})

var _ = Describe("RenderProject", func() {
	var nginxDir string

	BeforeEach(func() {
		nginxDir = GinkgoT().TempDir()
		viper.Set("paths.nginx", nginxDir)
	})

	AfterEach(func() {
		viper.Set("paths.nginx", "")
	})

	It("prefers the project-named template over the default", func() {
		Expect(os.WriteFile(
			filepath.Join(nginxDir, "app.conf"),
			[]byte("proxy_pass http://198.51.100.10:8000;"),
			0644,
		)).To(Succeed())
		Expect(os.WriteFile(
			filepath.Join(nginxDir, "default.conf"),
			[]byte("proxy_pass http://198.51.100.99:8000;"),
			0644,
		)).To(Succeed())

		result, err := nginx.RenderProject("app", "203.0.113.50")
		Expect(err).NotTo(HaveOccurred())
		Expect(result.TemplatePath).To(Equal(filepath.Join(nginxDir, "app.conf")))
		Expect(result.Replaced).To(HaveKey("198.51.100.10"))
	})

	It("falls back to default.conf when the project has no template", func() {
		Expect(os.WriteFile(
			filepath.Join(nginxDir, "default.conf"),
			[]byte("proxy_pass http://198.51.100.99:8000;"),
			0644,
		)).To(Succeed())

		result, err := nginx.RenderProject("app", "203.0.113.50")
		Expect(err).NotTo(HaveOccurred())
		Expect(result.TemplatePath).To(Equal(filepath.Join(nginxDir, "default.conf")))
	})

	It("writes the rendered config next to the template", func() {
		Expect(os.WriteFile(
			filepath.Join(nginxDir, "app.conf"),
			[]byte("proxy_pass http://198.51.100.10:8000;"),
			0644,
		)).To(Succeed())

		_, err := nginx.RenderProject("app", "203.0.113.50")
		Expect(err).NotTo(HaveOccurred())

		rendered, err := os.ReadFile(filepath.Join(nginxDir, "app.rendered.conf"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(rendered)).To(ContainSubstring("203.0.113.50:8000"))
	})

	It("fails clearly when no template exists", func() {
		_, err := nginx.RenderProject("app", "203.0.113.50")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("no nginx template"))
	})
})
