package resend

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	resend "github.com/resend/resend-go/v2"
)

// Service sends operational mail (recompute reports, admin invites) and
// records admin grants.
type Service struct {
	firestoreClient *firestore.Client
	resendClient    *resend.Client
	hostURL         string
	reportRecipient string
}

// NewService creates a new mail service. Mail is skipped when apiKey is
// empty so local runs do not need a resend account.
func NewService(firestoreClient *firestore.Client, apiKey, hostURL, reportRecipient string) *Service {
	var client *resend.Client
	if apiKey != "" {
		client = resend.NewClient(apiKey)
	}
	return &Service{
		firestoreClient: firestoreClient,
		resendClient:    client,
		hostURL:         hostURL,
		reportRecipient: reportRecipient,
	}
}

// SendRunReport mails the outcome of a leaderboard recompute run to the
// configured recipient. Failures are logged, never fatal: the report is a
// courtesy, not part of the pipeline.
func (s Service) SendRunReport(ctx context.Context, report RunReport) {
	if s.resendClient == nil || s.reportRecipient == "" {
		return
	}

	subject := "Leaderboard recompute completed"
	if report.Error != "" {
		subject = "Leaderboard recompute failed"
	}

	params := &resend.SendEmailRequest{
		From:    "reports@resend.dev",
		To:      []string{s.reportRecipient},
		Subject: subject,
		Html:    runReportTemplate(report),
	}

	if _, err := s.resendClient.Emails.Send(params); err != nil {
		log.Printf("Failed to send run report mail: %v\n", err)
	}
}

// SendAdminInvite mails an invite link carrying the given code.
func (s Service) SendAdminInvite(ctx context.Context, email, inviteCode string) error {
	if s.resendClient == nil {
		return fmt.Errorf("mail is not configured")
	}

	params := &resend.SendEmailRequest{
		From:    "onboarding@resend.dev",
		To:      []string{email},
		Subject: "دعوة مشرف — نبض الملاعب",
		Html:    inviteTemplate(fmt.Sprintf("%s/access/v1/invite/%s", s.hostURL, inviteCode)),
	}

	if _, err := s.resendClient.Emails.Send(params); err != nil {
		log.Printf("Failed to send invite mail: %v\n", err)
		return err
	}
	return nil
}

// GrantAdmin records an admin grant for the user. The transaction keeps the
// grant idempotent when an invite link is opened twice.
func (s Service) GrantAdmin(ctx context.Context, userID, email string) error {
	docRef := s.firestoreClient.Collection("admins").Doc(userID)

	err := s.firestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err == nil && doc.Exists() {
			return nil
		}
		return tx.Set(docRef, map[string]interface{}{
			"email": email,
		})
	})
	if err != nil {
		log.Printf("Failed to grant admin access: %v\n", err)
		return err
	}
	return nil
}

func runReportTemplate(report RunReport) string {
	status := "اكتمل التحديث بنجاح"
	if report.Error != "" {
		status = fmt.Sprintf("فشل التحديث: %s", report.Error)
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html dir="rtl">
<body style="font-family: Arial, sans-serif;">
	<h2>تقرير تحديث لوحة الصدارة</h2>
	<p>%s</p>
	<ul>
		<li>المباريات المثبتة: %d</li>
		<li>المباريات المنتهية: %d</li>
		<li>التوقعات المحدثة: %d</li>
		<li>المستخدمون المصنفون: %d</li>
		<li>المدة: %d ms</li>
	</ul>
</body>
</html>`, status, report.PinnedFixtures, report.FinishedFixtures, report.UpdatedPredictions, report.RankedUsers, report.DurationMillis)
}

func inviteTemplate(url string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html dir="rtl">
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
	<div style="background-color: #ffffff; max-width: 600px; margin: 0 auto; padding: 20px;">
		<h2>مرحباً،</h2>
		<p>تمت دعوتك للإشراف على تطبيق نبض الملاعب. اضغط على الزر أدناه للمتابعة:</p>
		<a href="%s" style="display: block; width: 200px; margin: 20px auto; background-color: #007BFF; color: #ffffff; text-align: center; line-height: 50px; text-decoration: none; border-radius: 5px;">تفعيل الدعوة</a>
	</div>
</body>
</html>`, url)
}
