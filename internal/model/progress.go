package model

// BucketStatus reports one named requirement bucket: how many matching
// courses (or credits) are completed, scheduled, and required.
type BucketStatus struct {
	Name        string   `json:"name"`
	Required    int      `json:"required"`
	Completed   int      `json:"completed"`
	Scheduled   int      `json:"scheduled"`
	CreditBased bool     `json:"credit_based"`
	Courses     []string `json:"courses,omitempty"`
	Satisfied   bool     `json:"satisfied"`
}

// KelleyProgress carries Kelley-specific degree metrics.
type KelleyProgress struct {
	ICoreEligible   bool `json:"icore_eligible"`
	BusinessCredits int  `json:"business_credits"`
}

// LuddyProgress carries Luddy-specific degree metrics.
type LuddyProgress struct {
	MajorCredits     int  `json:"major_credits"`
	CapstoneComplete bool `json:"capstone_complete"`
}

// ProgressReport is the full degree-progress view for a profile plus its
// currently scheduled courses.
type ProgressReport struct {
	Percentage         float64         `json:"percentage"`
	CompletedCredits   int             `json:"completed_credits"`
	ScheduledCredits   int             `json:"scheduled_credits"`
	TotalCredits       int             `json:"total_credits"`
	RemainingCredits   int             `json:"remaining_credits"`
	ICorePrerequisites []BucketStatus  `json:"icore_prerequisites"`
	GeneralEducation   []BucketStatus  `json:"general_education"`
	OtherRequired      []BucketStatus  `json:"other_required"`
	Kelley             *KelleyProgress `json:"kelley,omitempty"`
	Luddy              *LuddyProgress  `json:"luddy,omitempty"`
}
