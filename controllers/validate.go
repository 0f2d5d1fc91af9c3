package controllers

import (
	"regexp"
	"strings"
	"time"

	"github.com/flbahai/community/models"
)

// Validation runs before any write. Each validate function normalizes the
// payload into a row ready for insertion and returns a human readable
// message when a required field is blank or an enumerated field is outside
// its allowed set. An empty message means the payload is acceptable.

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail checks the local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// optStr trims s and coerces the empty string to an explicit absent value.
func optStr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

type eventSubmissionRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
}

func validateEventSubmission(req eventSubmissionRequest) (models.Event, string) {
	title := strings.TrimSpace(req.Title)
	if title == "" || req.StartTime == nil || req.StartTime.IsZero() {
		return models.Event{}, "Title and start time are required."
	}
	return models.Event{
		Title:       title,
		Description: optStr(req.Description),
		Location:    optStr(req.Location),
		StartTime:   *req.StartTime,
		EndTime:     req.EndTime,
		Status:      models.StatusPending,
		IsHolyDay:   false,
	}, ""
}

type listingSubmissionRequest struct {
	BusinessName string `json:"business_name"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	WebsiteURL   string `json:"website_url"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Location     string `json:"location"`
}

func validateListingSubmission(req listingSubmissionRequest) (models.BusinessListing, string) {
	name := strings.TrimSpace(req.BusinessName)
	if name == "" || req.Category == "" {
		return models.BusinessListing{}, "Business name and category are required."
	}
	if !models.ValidBusinessCategory(req.Category) {
		return models.BusinessListing{}, "Invalid category."
	}
	return models.BusinessListing{
		BusinessName: name,
		Category:     req.Category,
		Description:  optStr(req.Description),
		WebsiteURL:   optStr(req.WebsiteURL),
		Phone:        optStr(req.Phone),
		Email:        optStr(req.Email),
		Location:     optStr(req.Location),
		Status:       models.StatusPending,
	}, ""
}

type gatheringSubmissionRequest struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Address     string `json:"address"`
	Schedule    string `json:"schedule"`
	Recurrence  string `json:"recurrence"`
	DayOfWeek   string `json:"day_of_week"`
	TimeOfDay   string `json:"time_of_day"`
	HostName    string `json:"host_name"`
	HostContact string `json:"host_contact"`
}

func validateGatheringSubmission(req gatheringSubmissionRequest) (models.DevotionalGathering, string) {
	title := strings.TrimSpace(req.Title)
	schedule := strings.TrimSpace(req.Schedule)
	if title == "" || req.Type == "" || schedule == "" {
		return models.DevotionalGathering{}, "Title, type, and schedule are required."
	}
	if !models.ValidDevotionalType(req.Type) {
		return models.DevotionalGathering{}, "Invalid gathering type."
	}
	recurrence := req.Recurrence
	if recurrence == "" {
		recurrence = models.RecurrenceWeekly
	}
	return models.DevotionalGathering{
		Title:       title,
		Type:        req.Type,
		Description: optStr(req.Description),
		Location:    optStr(req.Location),
		Address:     optStr(req.Address),
		Schedule:    schedule,
		Recurrence:  recurrence,
		DayOfWeek:   optStr(req.DayOfWeek),
		TimeOfDay:   optStr(req.TimeOfDay),
		HostName:    optStr(req.HostName),
		HostContact: optStr(req.HostContact),
		Status:      models.StatusPending,
	}, ""
}

type threadRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func validateThread(req threadRequest) (models.BoardThread, string) {
	title := strings.TrimSpace(req.Title)
	body := strings.TrimSpace(req.Body)
	if title == "" || body == "" {
		return models.BoardThread{}, "Title and body are required."
	}
	return models.BoardThread{Title: title, Body: body}, ""
}

type replyRequest struct {
	ThreadID uint   `json:"thread_id"`
	Body     string `json:"body"`
}

func validateReply(req replyRequest) (models.BoardReply, string) {
	body := strings.TrimSpace(req.Body)
	if req.ThreadID == 0 || body == "" {
		return models.BoardReply{}, "Thread ID and body are required."
	}
	return models.BoardReply{ThreadID: req.ThreadID, Body: body}, ""
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func validateContact(req contactRequest) (models.ContactMessage, string) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	subject := strings.TrimSpace(req.Subject)
	message := strings.TrimSpace(req.Message)
	if name == "" || email == "" || subject == "" || message == "" {
		return models.ContactMessage{}, "All fields are required."
	}
	return models.ContactMessage{Name: name, Email: email, Subject: subject, Message: message}, ""
}
