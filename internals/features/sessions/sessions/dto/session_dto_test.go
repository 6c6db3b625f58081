// file: internals/features/sessions/sessions/dto/session_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	model "tutorku_backend/internals/features/sessions/sessions/model"
)

func TestParseTimestamp(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)

	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{
			name: "rfc3339 with offset",
			in:   "2024-03-05T18:00:00+07:00",
			want: time.Date(2024, time.March, 5, 18, 0, 0, 0, jakarta),
		},
		{
			name: "rfc3339 utc",
			in:   "2024-03-05T11:00:00Z",
			want: time.Date(2024, time.March, 5, 11, 0, 0, 0, time.UTC),
		},
		{
			name: "local form takes the given location",
			in:   "2024-03-05T18:00",
			want: time.Date(2024, time.March, 5, 18, 0, 0, 0, jakarta),
		},
		{
			name: "surrounding whitespace",
			in:   "  2024-03-05T18:00  ",
			want: time.Date(2024, time.March, 5, 18, 0, 0, 0, jakarta),
		},
		{name: "date only", in: "2024-03-05", wantErr: true},
		{name: "garbage", in: "tomorrow evening", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in, jakarta)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTimestamp(%q): expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimestamp(%q): %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCreateSessionRequest_ToModel(t *testing.T) {
	classID := uuid.New()
	loc := time.UTC

	mode := " online "
	status := "completed"
	location := "  Ruang 2  "
	empty := "   "

	req := CreateSessionRequest{
		StartAt:    "2024-03-05T18:00",
		EndAt:      "2024-03-05T20:00",
		Mode:       &mode,
		Status:     &status,
		Location:   &location,
		OnlineLink: &empty,
	}

	m, err := req.ToModel(classID, loc)
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.TeachingSessionClassID != classID {
		t.Errorf("class id = %v, want %v", m.TeachingSessionClassID, classID)
	}
	if m.TeachingSessionMode != model.MeetingOnline {
		t.Errorf("mode = %v, want ONLINE", m.TeachingSessionMode)
	}
	if m.TeachingSessionStatus != model.SessionCompleted {
		t.Errorf("status = %v, want COMPLETED", m.TeachingSessionStatus)
	}
	if m.TeachingSessionLocation == nil || *m.TeachingSessionLocation != "Ruang 2" {
		t.Errorf("location = %v, want trimmed", m.TeachingSessionLocation)
	}
	if m.TeachingSessionOnlineLink != nil {
		t.Errorf("online link = %v, want nil for blank input", *m.TeachingSessionOnlineLink)
	}
	if m.TeachingSessionGeneratedFromSchedule {
		t.Error("manual sessions must not be flagged as generated")
	}
	if want := time.Date(2024, time.March, 5, 18, 0, 0, 0, time.UTC); !m.TeachingSessionStartAt.Equal(want) {
		t.Errorf("start = %v, want %v", m.TeachingSessionStartAt, want)
	}
}

func TestCreateSessionRequest_ToModel_Defaults(t *testing.T) {
	req := CreateSessionRequest{
		StartAt: "2024-03-05T18:00:00Z",
		EndAt:   "2024-03-05T20:00:00Z",
	}
	m, err := req.ToModel(uuid.New(), time.UTC)
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.TeachingSessionMode != model.MeetingOffline {
		t.Errorf("mode = %v, want OFFLINE default", m.TeachingSessionMode)
	}
	if m.TeachingSessionStatus != model.SessionPlanned {
		t.Errorf("status = %v, want PLANNED default", m.TeachingSessionStatus)
	}
}

func TestCreateSessionRequest_ToModel_BadTimestamps(t *testing.T) {
	for _, req := range []CreateSessionRequest{
		{StartAt: "nope", EndAt: "2024-03-05T20:00"},
		{StartAt: "2024-03-05T18:00", EndAt: "nope"},
	} {
		if _, err := req.ToModel(uuid.New(), time.UTC); err == nil {
			t.Errorf("ToModel(%+v): expected error", req)
		}
	}
}
