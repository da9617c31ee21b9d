// Package seed loads the catalog, therapist roster and group-session schedule
// a fresh server starts with.
package seed

import (
	"fmt"
	"time"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/repository"
)

var medicines = []entity.NewMedicine{
	{
		Name:        "Sertraline (Generic)",
		Description: "SSRI medication commonly prescribed for depression, anxiety, and related conditions.",
		Category:    "Antidepressant",
		Price:       1299,
		Rating:      4,
		RatingCount: 124,
	},
	{
		Name:        "Alprazolam (Generic)",
		Description: "Benzodiazepine medication for anxiety and panic disorders. Short-term use recommended.",
		Category:    "Anxiolytic",
		Price:       1550,
		Rating:      4,
		RatingCount: 89,
	},
	{
		Name:        "Lithium Carbonate",
		Description: "Standard treatment for bipolar disorder to stabilize mood and prevent manic/depressive episodes.",
		Category:    "Mood Stabilizer",
		Price:       1875,
		Rating:      5,
		RatingCount: 56,
	},
	{
		Name:        "Bupropion XL",
		Description: "NDRI medication used for depression and seasonal affective disorder with energizing effects.",
		Category:    "Antidepressant",
		Price:       2450,
		Rating:      4,
		RatingCount: 78,
	},
	{
		Name:        "Omega-3 Fish Oil",
		Description: "Supports brain health and may help with symptoms of depression and anxiety alongside treatment.",
		Category:    "Supplement",
		Price:       2299,
		Rating:      4,
		RatingCount: 210,
	},
	{
		Name:        "Melatonin (3mg)",
		Description: "Natural hormone supplement to help regulate sleep cycles and improve sleep quality.",
		Category:    "Sleep Aid",
		Price:       999,
		Rating:      5,
		RatingCount: 342,
	},
}

var therapists = []entity.NewTherapist{
	{
		Name:           "Dr. Sarah Johnson",
		Specialization: "Anxiety & Depression",
		Bio:            "Dr. Johnson specializes in treating anxiety and depression using evidence-based approaches. She has over 15 years of experience helping clients achieve better mental health.",
	},
	{
		Name:           "Dr. Michael Chen",
		Specialization: "Trauma & PTSD",
		Bio:            "With expertise in trauma-informed care, Dr. Chen helps clients process traumatic experiences and develop resilience. His gentle approach creates a safe space for healing.",
	},
	{
		Name:           "Lisa Rodriguez, LMFT",
		Specialization: "Couples Therapy",
		Bio:            "Lisa is passionate about helping couples improve communication and rebuild connection. She uses emotion-focused therapy to help partners understand each other more deeply.",
	},
	{
		Name:           "James Wilson, LCSW",
		Specialization: "Addiction Recovery",
		Bio:            "James brings compassion and understanding to his work with clients recovering from substance use. He combines motivational interviewing with practical tools for lasting change.",
	},
	{
		Name:           "Dr. Anita Patel",
		Specialization: "Child & Adolescent",
		Bio:            "Dr. Patel's playful yet structured approach helps children and adolescents navigate emotional challenges. She collaborates closely with families to support young people's growth.",
	},
	{
		Name:           "Robert Taylor, LPC",
		Specialization: "Mindfulness & CBT",
		Bio:            "Robert specializes in mindfulness-based cognitive therapy, helping clients develop awareness of thought patterns and create meaningful change in their lives.",
	},
}

var groupSessions = []entity.GroupSession{
	{
		Name:        "Anxiety Management",
		Description: "A supportive group for those dealing with anxiety. Learn practical coping skills and connect with others on a similar journey.",
	},
	{
		Name:        "Grief Support",
		Description: "This compassionate group provides space to process grief and loss in a supportive environment.",
	},
	{
		Name:        "Mindfulness Meditation",
		Description: "Learn and practice mindfulness techniques to reduce stress and increase present-moment awareness.",
	},
	{
		Name:        "Depression Support",
		Description: "Connect with others experiencing depression in this supportive group focused on coping strategies and mutual understanding.",
	},
	{
		Name:        "Stress Reduction",
		Description: "Develop practical tools for managing stress in daily life and creating more balance.",
	},
	{
		Name:        "Addiction Recovery",
		Description: "A recovery-focused group providing support and accountability for those dealing with various addictive behaviors.",
	},
}

const (
	groupSessionLead     = 7 * 24 * time.Hour
	groupSessionFirstHr  = 9
	groupSessionDuration = 60
	groupSessionCapacity = 10
)

// Sample inserts the sample catalog, therapists and group sessions. Group
// sessions are scheduled one week after now, hourly from 09:00 local time, each
// led by the therapist with the same position in the roster.
func Sample(store *repository.Store, now time.Time) error {
	for _, m := range medicines {
		if _, err := store.CreateMedicine(m); err != nil {
			return fmt.Errorf("seed medicine %q: %w", m.Name, err)
		}
	}

	therapistIDs := make([]int, 0, len(therapists))
	for _, t := range therapists {
		created, err := store.CreateTherapist(t)
		if err != nil {
			return fmt.Errorf("seed therapist %q: %w", t.Name, err)
		}
		therapistIDs = append(therapistIDs, created.ID)
	}

	day := now.Add(groupSessionLead)
	for i, g := range groupSessions {
		g.TherapistID = therapistIDs[i%len(therapistIDs)]
		g.SessionDate = time.Date(day.Year(), day.Month(), day.Day(), groupSessionFirstHr+i, 0, 0, 0, day.Location())
		g.Duration = groupSessionDuration
		g.MaxParticipants = groupSessionCapacity
		g.Status = entity.StatusScheduled
		if _, err := store.CreateGroupSession(g); err != nil {
			return fmt.Errorf("seed group session %q: %w", g.Name, err)
		}
	}
	return nil
}
