package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/wekeepgrowing/nngc-backend-monorepo/pkg/contracts"
)

// 이메일 제목
const (
	SubjectRegistration  = "Activate Your NNGC Account"
	SubjectWelcome       = "Welcome to NNGC!"
	SubjectPasswordReset = "Reset Your NNGC Password"
)

// TemplateData 템플릿에 주입하는 값
type TemplateData struct {
	Name      string
	Link      string
	LoginURL  string
	ExpiresIn string
}

const layout = `{{define "layout"}}<div style="font-family:Helvetica,Arial,sans-serif;font-size:16px;margin:0;color:#0b0c0c">
  <table role="presentation" width="100%" style="border-collapse:collapse;min-width:100%;width:100%!important" cellpadding="0" cellspacing="0" border="0">
    <tr>
      <td width="100%" height="53" bgcolor="#0b0c0c" style="padding:0 20px">
        <span style="font-size:28px;line-height:1.3;font-weight:700;color:#ffffff">{{template "title" .}}</span>
      </td>
    </tr>
  </table>
  <table role="presentation" align="center" cellpadding="0" cellspacing="0" border="0" style="border-collapse:collapse;max-width:580px;width:100%!important" width="100%">
    <tr><td height="30"><br></td></tr>
    <tr>
      <td style="font-size:19px;line-height:1.315789474;max-width:560px">
        <p style="margin:0 0 20px 0">Hi {{.Name}},</p>
        {{template "content" .}}
        <hr style="margin:30px 0;border:none;border-top:1px solid #eee">
        <p style="margin:0;font-size:14px;color:#666">
          Northern Neck Garbage Collection, LLC<br>
          164 Cellar Haven Lane<br>
          Lottsburg, VA 22511<br>
          Phone: 804-220-0029
        </p>
      </td>
    </tr>
    <tr><td height="30"><br></td></tr>
  </table>
</div>{{end}}`

const registrationTemplate = `{{define "title"}}Confirm Your Email{{end}}
{{define "content"}}<p style="margin:0 0 20px 0">Thank you for registering with Northern Neck Garbage Collection. Please click the link below to activate your account:</p>
<p style="margin:0 0 20px 0"><a href="{{.Link}}" style="background:#1d70b8;color:#ffffff;padding:10px 20px;text-decoration:none">Activate Account</a></p>
<p style="margin:0 0 20px 0">This link will expire in {{.ExpiresIn}} for security reasons.</p>
<p style="margin:0 0 20px 0">If you didn't create an account, please ignore this email.</p>{{end}}`

const welcomeTemplate = `{{define "title"}}Welcome to NNGC!{{end}}
{{define "content"}}<p style="margin:0 0 20px 0">Your email has been confirmed and your Northern Neck Garbage Collection account is now active.</p>
<p style="margin:0 0 20px 0"><a href="{{.LoginURL}}" style="background:#1d70b8;color:#ffffff;padding:10px 20px;text-decoration:none">Log In</a></p>
<p style="margin:0 0 20px 0">Thank you for choosing us for your trash collection service.</p>{{end}}`

const passwordResetTemplate = `{{define "title"}}Reset Your Password{{end}}
{{define "content"}}<p style="margin:0 0 20px 0">We received a request to reset your password. Click the link below to choose a new one:</p>
<p style="margin:0 0 20px 0"><a href="{{.Link}}" style="background:#1d70b8;color:#ffffff;padding:10px 20px;text-decoration:none">Reset Password</a></p>
<p style="margin:0 0 20px 0">This link will expire in {{.ExpiresIn}} for security reasons.</p>
<p style="margin:0 0 20px 0">If you didn't request a password reset, please ignore this email.</p>{{end}}`

type emailTemplate struct {
	subject string
	tmpl    *template.Template
}

// TemplateRenderer 이메일 종류별 HTML 본문 생성기
type TemplateRenderer struct {
	templates map[contracts.EmailKind]emailTemplate
	loginURL  string
	expiresIn string
}

// NewTemplateRenderer 템플릿을 파싱해 렌더러를 생성합니다
func NewTemplateRenderer(loginURL, expiresIn string) (*TemplateRenderer, error) {
	sources := map[contracts.EmailKind]struct {
		subject string
		body    string
	}{
		contracts.EmailKindRegistration:  {SubjectRegistration, registrationTemplate},
		contracts.EmailKindWelcome:       {SubjectWelcome, welcomeTemplate},
		contracts.EmailKindPasswordReset: {SubjectPasswordReset, passwordResetTemplate},
	}

	templates := make(map[contracts.EmailKind]emailTemplate, len(sources))
	for kind, src := range sources {
		tmpl, err := template.New(string(kind)).Parse(layout)
		if err != nil {
			return nil, fmt.Errorf("레이아웃 템플릿 파싱 실패: %w", err)
		}
		if _, err := tmpl.Parse(src.body); err != nil {
			return nil, fmt.Errorf("%s 템플릿 파싱 실패: %w", kind, err)
		}
		templates[kind] = emailTemplate{subject: src.subject, tmpl: tmpl}
	}

	return &TemplateRenderer{templates: templates, loginURL: loginURL, expiresIn: expiresIn}, nil
}

// Render 제목과 HTML 본문 반환
func (r *TemplateRenderer) Render(kind contracts.EmailKind, name, link string) (string, string, error) {
	t, ok := r.templates[kind]
	if !ok {
		return "", "", fmt.Errorf("알 수 없는 이메일 종류: %s", kind)
	}
	if name == "" {
		name = "there"
	}

	var buf bytes.Buffer
	data := TemplateData{Name: name, Link: link, LoginURL: r.loginURL, ExpiresIn: r.expiresIn}
	if err := t.tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", "", fmt.Errorf("%s 템플릿 렌더링 실패: %w", kind, err)
	}
	return t.subject, buf.String(), nil
}
