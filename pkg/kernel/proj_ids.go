package kernel

type JobID string

func NewJobID(id string) JobID { return JobID(id) }
func (r JobID) String() string { return string(r) }
func (r JobID) IsEmpty() bool  { return string(r) == "" }

type ResumeID string

func NewResumeID(id string) ResumeID { return ResumeID(id) }
func (r ResumeID) String() string    { return string(r) }
func (r ResumeID) IsEmpty() bool     { return string(r) == "" }

// TaskID identifies a background resume parse task
type TaskID string

func NewTaskID(id string) TaskID { return TaskID(id) }
func (t TaskID) String() string  { return string(t) }
func (t TaskID) IsEmpty() bool   { return string(t) == "" }

type ApplicationID string

func NewApplicationID(id string) ApplicationID { return ApplicationID(id) }
func (a ApplicationID) String() string         { return string(a) }
func (a ApplicationID) IsEmpty() bool          { return string(a) == "" }
