package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/yigit/wish2work/internal/app/models"
	"github.com/yigit/wish2work/internal/app/repositories"
	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

// memDB is an in-memory stand-in for the PostgreSQL schema. It enforces the
// same unique, foreign key and conditional-write rules the repositories rely on.
type memDB struct {
	seq int64

	departments map[int64]models.Department
	programs    map[int64]models.Program
	courses     map[int64]models.Course
	admins      map[int64]models.Admin
	staff       map[int64]models.Staff
	students    map[int64]models.Student
	accounts    map[int64]models.Account
	skills      map[int64]models.Skill
	enrollments map[int64]models.StudentCourse
	slots       map[int64]models.Availability
	requests    map[int64]models.Request

	// failures makes the named operation (e.g. "Requests.Create") return the error
	failures map[string]error
	// writes records every successful mutating call in order
	writes []string
}

func newMemDB() *memDB {
	return &memDB{
		departments: map[int64]models.Department{},
		programs:    map[int64]models.Program{},
		courses:     map[int64]models.Course{},
		admins:      map[int64]models.Admin{},
		staff:       map[int64]models.Staff{},
		students:    map[int64]models.Student{},
		accounts:    map[int64]models.Account{},
		skills:      map[int64]models.Skill{},
		enrollments: map[int64]models.StudentCourse{},
		slots:       map[int64]models.Availability{},
		requests:    map[int64]models.Request{},
		failures:    map[string]error{},
	}
}

func (db *memDB) next() int64 {
	db.seq++
	return db.seq
}

func (db *memDB) fail(op string) error {
	return db.failures[op]
}

func (db *memDB) wrote(op string) {
	db.writes = append(db.writes, op)
}

func (db *memDB) stores() Stores {
	return Stores{
		Departments:    memDepartments{db},
		Programs:       memPrograms{db},
		Courses:        memCourses{db},
		Admins:         memAdmins{db},
		Staff:          memStaff{db},
		Students:       memStudents{db},
		Accounts:       memAccounts{db},
		Skills:         memSkills{db},
		StudentCourses: memEnrollments{db},
		Availability:   memSlots{db},
		Requests:       memRequests{db},
	}
}

func cloneMap[T any](m map[int64]T) map[int64]T {
	out := make(map[int64]T, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (db *memDB) snapshot() *memDB {
	return &memDB{
		seq:         db.seq,
		departments: cloneMap(db.departments),
		programs:    cloneMap(db.programs),
		courses:     cloneMap(db.courses),
		admins:      cloneMap(db.admins),
		staff:       cloneMap(db.staff),
		students:    cloneMap(db.students),
		accounts:    cloneMap(db.accounts),
		skills:      cloneMap(db.skills),
		enrollments: cloneMap(db.enrollments),
		slots:       cloneMap(db.slots),
		requests:    cloneMap(db.requests),
		writes:      append([]string(nil), db.writes...),
	}
}

func (db *memDB) restore(s *memDB) {
	db.seq = s.seq
	db.departments = s.departments
	db.programs = s.programs
	db.courses = s.courses
	db.admins = s.admins
	db.staff = s.staff
	db.students = s.students
	db.accounts = s.accounts
	db.skills = s.skills
	db.enrollments = s.enrollments
	db.slots = s.slots
	db.requests = s.requests
	db.writes = s.writes
}

// memTx runs fn against the same memDB and restores the pre-transaction state when fn fails.
type memTx struct {
	db         *memDB
	commits    int
	rollbacks  int
	commitFail error
}

func (t *memTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx Stores) error) error {
	snap := t.db.snapshot()
	err := fn(ctx, t.db.stores())
	if err == nil && t.commitFail != nil {
		err = t.commitFail
	}
	if err != nil {
		t.db.restore(snap)
		t.rollbacks++
		return err
	}
	t.commits++
	return nil
}

func sortedValues[T any](m map[int64]T, keep func(T) bool) []*T {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]*T, 0, len(keys))
	for _, k := range keys {
		v := m[k]
		if keep == nil || keep(v) {
			out = append(out, &v)
		}
	}
	return out
}

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}

func inSet(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (db *memDB) emailTaken(email string, skip int64, emails func() map[int64]string) bool {
	for id, e := range emails() {
		if id != skip && strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}

// --- departments ---

type memDepartments struct{ db *memDB }

func (s memDepartments) Create(ctx context.Context, d *models.Department) error {
	if err := s.db.fail("Departments.Create"); err != nil {
		return err
	}
	for _, existing := range s.db.departments {
		if strings.EqualFold(existing.Name, d.Name) {
			return apperrors.NewConflictError("department already exists")
		}
	}
	d.ID = s.db.next()
	d.CreatedAt, d.UpdatedAt = time.Now(), time.Now()
	s.db.departments[d.ID] = *d
	s.db.wrote("Departments.Create")
	return nil
}

func (s memDepartments) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	if err := s.db.fail("Departments.GetByID"); err != nil {
		return nil, err
	}
	d, ok := s.db.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return &d, nil
}

func (s memDepartments) GetByName(ctx context.Context, name string) (*models.Department, error) {
	for _, d := range s.db.departments {
		if strings.EqualFold(d.Name, name) {
			return &d, nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (s memDepartments) GetAll(ctx context.Context) ([]*models.Department, error) {
	return sortedValues(s.db.departments, nil), nil
}

func (s memDepartments) Update(ctx context.Context, d *models.Department) error {
	existing, ok := s.db.departments[d.ID]
	if !ok {
		return apperrors.ErrDepartmentNotFound
	}
	d.CreatedAt, d.UpdatedAt = existing.CreatedAt, time.Now()
	s.db.departments[d.ID] = *d
	s.db.wrote("Departments.Update")
	return nil
}

func (s memDepartments) Delete(ctx context.Context, id int64) error {
	if _, ok := s.db.departments[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	for _, p := range s.db.programs {
		if p.DepartmentID == id {
			return apperrors.ErrInUse
		}
	}
	for _, c := range s.db.courses {
		if c.DepartmentID == id {
			return apperrors.ErrInUse
		}
	}
	delete(s.db.departments, id)
	s.db.wrote("Departments.Delete")
	return nil
}

// --- programs ---

type memPrograms struct{ db *memDB }

func (s memPrograms) Create(ctx context.Context, p *models.Program) error {
	if _, ok := s.db.departments[p.DepartmentID]; !ok {
		return apperrors.ErrUnknownReference
	}
	p.ID = s.db.next()
	p.CreatedAt, p.UpdatedAt = time.Now(), time.Now()
	s.db.programs[p.ID] = *p
	s.db.wrote("Programs.Create")
	return nil
}

func (s memPrograms) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	p, ok := s.db.programs[id]
	if !ok {
		return nil, apperrors.ErrProgramNotFound
	}
	return &p, nil
}

func (s memPrograms) GetAll(ctx context.Context) ([]*models.Program, error) {
	return sortedValues(s.db.programs, nil), nil
}

func (s memPrograms) GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Program, error) {
	return sortedValues(s.db.programs, func(p models.Program) bool { return p.DepartmentID == departmentID }), nil
}

func (s memPrograms) IDsByDepartment(ctx context.Context, departmentID int64, nameTerm string) ([]int64, error) {
	if err := s.db.fail("Programs.IDsByDepartment"); err != nil {
		return nil, err
	}
	ids := []int64{}
	for _, p := range sortedValues(s.db.programs, nil) {
		if p.DepartmentID == departmentID && (nameTerm == "" || containsFold(p.Name, nameTerm)) {
			ids = append(ids, p.ID)
		}
	}
	return ids, nil
}

func (s memPrograms) Update(ctx context.Context, p *models.Program) error {
	existing, ok := s.db.programs[p.ID]
	if !ok {
		return apperrors.ErrProgramNotFound
	}
	if _, ok := s.db.departments[p.DepartmentID]; !ok {
		return apperrors.ErrUnknownReference
	}
	p.CreatedAt, p.UpdatedAt = existing.CreatedAt, time.Now()
	s.db.programs[p.ID] = *p
	s.db.wrote("Programs.Update")
	return nil
}

func (s memPrograms) Delete(ctx context.Context, id int64) error {
	if _, ok := s.db.programs[id]; !ok {
		return apperrors.ErrProgramNotFound
	}
	for _, st := range s.db.students {
		if st.ProgramID != nil && *st.ProgramID == id {
			return apperrors.ErrInUse
		}
	}
	delete(s.db.programs, id)
	s.db.wrote("Programs.Delete")
	return nil
}

// --- courses ---

type memCourses struct{ db *memDB }

func (s memCourses) Create(ctx context.Context, c *models.Course) error {
	if _, ok := s.db.departments[c.DepartmentID]; !ok {
		return apperrors.ErrUnknownReference
	}
	c.ID = s.db.next()
	c.CreatedAt, c.UpdatedAt = time.Now(), time.Now()
	s.db.courses[c.ID] = *c
	s.db.wrote("Courses.Create")
	return nil
}

func (s memCourses) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	c, ok := s.db.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return &c, nil
}

func (s memCourses) GetAll(ctx context.Context) ([]*models.Course, error) {
	return sortedValues(s.db.courses, nil), nil
}

func (s memCourses) IDsByName(ctx context.Context, term string) ([]int64, error) {
	ids := []int64{}
	for _, c := range sortedValues(s.db.courses, nil) {
		if containsFold(c.Name, term) {
			ids = append(ids, c.ID)
		}
	}
	return ids, nil
}

func (s memCourses) Update(ctx context.Context, c *models.Course) error {
	existing, ok := s.db.courses[c.ID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	c.CreatedAt, c.UpdatedAt = existing.CreatedAt, time.Now()
	s.db.courses[c.ID] = *c
	s.db.wrote("Courses.Update")
	return nil
}

func (s memCourses) Delete(ctx context.Context, id int64) error {
	if _, ok := s.db.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	for k, e := range s.db.enrollments {
		if e.CourseID == id {
			delete(s.db.enrollments, k)
		}
	}
	delete(s.db.courses, id)
	s.db.wrote("Courses.Delete")
	return nil
}

// --- admins ---

type memAdmins struct{ db *memDB }

func (s memAdmins) emails() map[int64]string {
	out := map[int64]string{}
	for id, a := range s.db.admins {
		out[id] = a.Email
	}
	return out
}

func (s memAdmins) Create(ctx context.Context, a *models.Admin) error {
	if s.db.emailTaken(a.Email, 0, s.emails) {
		return apperrors.ErrEmailAlreadyExists
	}
	a.ID = s.db.next()
	a.CreatedAt, a.UpdatedAt = time.Now(), time.Now()
	s.db.admins[a.ID] = *a
	s.db.wrote("Admins.Create")
	return nil
}

func (s memAdmins) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	a, ok := s.db.admins[id]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	return &a, nil
}

func (s memAdmins) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	for _, a := range s.db.admins {
		if strings.EqualFold(a.Email, email) {
			return &a, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (s memAdmins) GetAll(ctx context.Context) ([]*models.Admin, error) {
	return sortedValues(s.db.admins, nil), nil
}

func (s memAdmins) Update(ctx context.Context, a *models.Admin) error {
	existing, ok := s.db.admins[a.ID]
	if !ok {
		return apperrors.ErrAdminNotFound
	}
	if s.db.emailTaken(a.Email, a.ID, s.emails) {
		return apperrors.ErrEmailAlreadyExists
	}
	a.CreatedAt, a.UpdatedAt = existing.CreatedAt, time.Now()
	s.db.admins[a.ID] = *a
	s.db.wrote("Admins.Update")
	return nil
}

func (s memAdmins) Delete(ctx context.Context, id int64) error {
	if _, ok := s.db.admins[id]; !ok {
		return apperrors.ErrAdminNotFound
	}
	delete(s.db.admins, id)
	s.db.wrote("Admins.Delete")
	return nil
}

// --- staff ---

type memStaff struct{ db *memDB }

func (s memStaff) emails() map[int64]string {
	out := map[int64]string{}
	for id, st := range s.db.staff {
		out[id] = st.Email
	}
	return out
}

func (s memStaff) Create(ctx context.Context, st *models.Staff) error {
	if err := s.db.fail("Staff.Create"); err != nil {
		return err
	}
	if s.db.emailTaken(st.Email, 0, s.emails) {
		return apperrors.ErrEmailAlreadyExists
	}
	now := time.Now()
	st.ID = s.db.next()
	st.IsActive, st.ActivatedAt = true, &now
	st.CreatedAt, st.UpdatedAt = now, now
	s.db.staff[st.ID] = *st
	s.db.wrote("Staff.Create")
	return nil
}

func (s memStaff) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	st, ok := s.db.staff[id]
	if !ok {
		return nil, apperrors.ErrStaffNotFound
	}
	return &st, nil
}

func (s memStaff) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	for _, st := range s.db.staff {
		if strings.EqualFold(st.Email, email) {
			return &st, nil
		}
	}
	return nil, apperrors.ErrStaffNotFound
}

func (s memStaff) GetAll(ctx context.Context) ([]*models.Staff, error) {
	return sortedValues(s.db.staff, nil), nil
}

func (s memStaff) Update(ctx context.Context, st *models.Staff) error {
	existing, ok := s.db.staff[st.ID]
	if !ok {
		return apperrors.ErrStaffNotFound
	}
	if s.db.emailTaken(st.Email, st.ID, s.emails) {
		return apperrors.ErrEmailAlreadyExists
	}
	st.IsActive, st.ActivatedAt = existing.IsActive, existing.ActivatedAt
	st.CreatedAt, st.UpdatedAt = existing.CreatedAt, time.Now()
	s.db.staff[st.ID] = *st
	s.db.wrote("Staff.Update")
	return nil
}

func (s memStaff) SetActive(ctx context.Context, id int64, active bool) error {
	st, ok := s.db.staff[id]
	if !ok {
		return apperrors.ErrStaffNotFound
	}
	st.IsActive = active
	if active {
		now := time.Now()
		st.ActivatedAt = &now
	}
	s.db.staff[id] = st
	s.db.wrote("Staff.SetActive")
	return nil
}

func (s memStaff) Delete(ctx context.Context, id int64) error {
	if _, ok := s.db.staff[id]; !ok {
		return apperrors.ErrStaffNotFound
	}
	for _, r := range s.db.requests {
		if r.StaffID == id {
			return apperrors.ErrInUse
		}
	}
	delete(s.db.staff, id)
	s.db.wrote("Staff.Delete")
	return nil
}

// --- students ---

type memStudents struct{ db *memDB }

func (s memStudents) emails() map[int64]string {
	out := map[int64]string{}
	for id, st := range s.db.students {
		out[id] = st.Email
	}
	return out
}

func (s memStudents) Create(ctx context.Context, st *models.Student) error {
	if err := s.db.fail("Students.Create"); err != nil {
		return err
	}
	if s.db.emailTaken(st.Email, 0, s.emails) {
		return apperrors.ErrEmailAlreadyExists
	}
	if st.ProgramID != nil {
		if _, ok := s.db.programs[*st.ProgramID]; !ok {
			return apperrors.ErrUnknownReference
		}
	}
	now := time.Now()
	st.ID = s.db.next()
	st.IsActive, st.ActivatedAt = true, &now
	st.AverageRating = nil
	st.CreatedAt, st.UpdatedAt = now, now
	s.db.students[st.ID] = *st
	s.db.wrote("Students.Create")
	return nil
}

func (s memStudents) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	st, ok := s.db.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return &st, nil
}

func (s memStudents) List(ctx context.Context, offset uint64, limit int) ([]*models.Student, int64, error) {
	all := sortedValues(s.db.students, nil)
	total := int64(len(all))
	if offset >= uint64(len(all)) {
		return []*models.Student{}, total, nil
	}
	end := int(offset) + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// Search evaluates a compiled filter the way BuildSearchQuery's SQL does.
func (s memStudents) Search(ctx context.Context, f *models.StudentSearch) ([]*models.Student, error) {
	if err := s.db.fail("Students.Search"); err != nil {
		return nil, err
	}
	return sortedValues(s.db.students, func(st models.Student) bool {
		if st.ProgramID == nil || !inSet(f.ProgramIDs, *st.ProgramID) {
			return false
		}
		name := matchesName(f, &st)
		if f.FreeText {
			return (f.HasNamePredicate() && name) ||
				(len(f.SkillStudentIDs) > 0 && inSet(f.SkillStudentIDs, st.ID)) ||
				(len(f.CourseStudentIDs) > 0 && inSet(f.CourseStudentIDs, st.ID))
		}
		if f.HasNamePredicate() && !name {
			return false
		}
		if f.SkillStudentIDs != nil && !inSet(f.SkillStudentIDs, st.ID) {
			return false
		}
		if f.CourseStudentIDs != nil && !inSet(f.CourseStudentIDs, st.ID) {
			return false
		}
		return true
	}), nil
}

func matchesName(f *models.StudentSearch, st *models.Student) bool {
	switch {
	case f.NameTerm != "" && (containsFold(st.FirstName, f.NameTerm) || containsFold(st.LastName, f.NameTerm)):
		return true
	case f.FirstTerm != "" && containsFold(st.FirstName, f.FirstTerm):
		return true
	case f.LastTerm != "" && containsFold(st.LastName, f.LastTerm):
		return true
	case f.FullNameTerm != "" && containsFold(st.FullName(), f.FullNameTerm):
		return true
	}
	return false
}

func (s memStudents) Update(ctx context.Context, st *models.Student) error {
	existing, ok := s.db.students[st.ID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	if s.db.emailTaken(st.Email, st.ID, s.emails) {
		return apperrors.ErrEmailAlreadyExists
	}
	st.AverageRating = existing.AverageRating
	st.IsActive, st.ActivatedAt = existing.IsActive, existing.ActivatedAt
	st.CreatedAt, st.UpdatedAt = existing.CreatedAt, time.Now()
	s.db.students[st.ID] = *st
	s.db.wrote("Students.Update")
	return nil
}

func (s memStudents) UpdateAverageRating(ctx context.Context, id int64, avg *float64) error {
	if err := s.db.fail("Students.UpdateAverageRating"); err != nil {
		return err
	}
	st, ok := s.db.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	st.AverageRating = avg
	s.db.students[id] = st
	s.db.wrote("Students.UpdateAverageRating")
	return nil
}

func (s memStudents) SetActive(ctx context.Context, id int64, active bool) error {
	st, ok := s.db.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	st.IsActive = active
	s.db.students[id] = st
	s.db.wrote("Students.SetActive")
	return nil
}

func (s memStudents) Delete(ctx context.Context, id int64) error {
	if _, ok := s.db.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	for _, r := range s.db.requests {
		if r.StudentID == id {
			return apperrors.ErrInUse
		}
	}
	for k, v := range s.db.skills {
		if v.StudentID == id {
			delete(s.db.skills, k)
		}
	}
	for k, v := range s.db.enrollments {
		if v.StudentID == id {
			delete(s.db.enrollments, k)
		}
	}
	for k, v := range s.db.slots {
		if v.StudentID == id {
			delete(s.db.slots, k)
		}
	}
	delete(s.db.students, id)
	s.db.wrote("Students.Delete")
	return nil
}

// --- accounts ---

type memAccounts struct{ db *memDB }

func (s memAccounts) Create(ctx context.Context, a *models.Account) error {
	if err := s.db.fail("Accounts.Create"); err != nil {
		return err
	}
	for _, existing := range s.db.accounts {
		if strings.EqualFold(existing.Email, a.Email) {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	a.ID = s.db.next()
	a.CreatedAt = time.Now()
	s.db.accounts[a.ID] = *a
	s.db.wrote("Accounts.Create")
	return nil
}

func (s memAccounts) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	for _, a := range s.db.accounts {
		if strings.EqualFold(a.Email, email) {
			return &a, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (s memAccounts) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	a, ok := s.db.accounts[id]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return &a, nil
}

func (s memAccounts) UpdateEmailBySubject(ctx context.Context, role models.RoleType, subjectID int64, email string) error {
	for k, a := range s.db.accounts {
		if a.Role == role && a.SubjectID == subjectID {
			a.Email = email
			s.db.accounts[k] = a
			s.db.wrote("Accounts.UpdateEmailBySubject")
		}
	}
	return nil
}

func (s memAccounts) DeleteBySubject(ctx context.Context, role models.RoleType, subjectID int64) error {
	for k, a := range s.db.accounts {
		if a.Role == role && a.SubjectID == subjectID {
			delete(s.db.accounts, k)
			s.db.wrote("Accounts.DeleteBySubject")
		}
	}
	return nil
}

// --- skills ---

type memSkills struct{ db *memDB }

func (s memSkills) Create(ctx context.Context, sk *models.Skill) error {
	if _, ok := s.db.students[sk.StudentID]; !ok {
		return apperrors.ErrUnknownReference
	}
	sk.ID = s.db.next()
	sk.DateAdded = time.Now()
	s.db.skills[sk.ID] = *sk
	s.db.wrote("Skills.Create")
	return nil
}

func (s memSkills) GetByID(ctx context.Context, id int64) (*models.Skill, error) {
	sk, ok := s.db.skills[id]
	if !ok {
		return nil, apperrors.ErrSkillNotFound
	}
	return &sk, nil
}

func (s memSkills) GetAll(ctx context.Context) ([]*models.Skill, error) {
	return sortedValues(s.db.skills, nil), nil
}

func (s memSkills) GetByStudent(ctx context.Context, studentID int64) ([]*models.Skill, error) {
	return sortedValues(s.db.skills, func(sk models.Skill) bool { return sk.StudentID == studentID }), nil
}

func (s memSkills) StudentIDsMatching(ctx context.Context, term string) ([]int64, error) {
	if err := s.db.fail("Skills.StudentIDsMatching"); err != nil {
		return nil, err
	}
	seen := map[int64]bool{}
	ids := []int64{}
	for _, sk := range sortedValues(s.db.skills, nil) {
		desc := ""
		if sk.Description != nil {
			desc = *sk.Description
		}
		if (containsFold(sk.Title, term) || containsFold(desc, term)) && !seen[sk.StudentID] {
			seen[sk.StudentID] = true
			ids = append(ids, sk.StudentID)
		}
	}
	return ids, nil
}

func (s memSkills) Update(ctx context.Context, sk *models.Skill) error {
	if _, ok := s.db.skills[sk.ID]; !ok {
		return apperrors.ErrSkillNotFound
	}
	s.db.skills[sk.ID] = *sk
	s.db.wrote("Skills.Update")
	return nil
}

func (s memSkills) Delete(ctx context.Context, id int64) error {
	if _, ok := s.db.skills[id]; !ok {
		return apperrors.ErrSkillNotFound
	}
	delete(s.db.skills, id)
	s.db.wrote("Skills.Delete")
	return nil
}

// --- enrollments ---

type memEnrollments struct{ db *memDB }

func (s memEnrollments) Create(ctx context.Context, e *models.StudentCourse) error {
	if _, ok := s.db.students[e.StudentID]; !ok {
		return apperrors.ErrUnknownReference
	}
	if _, ok := s.db.courses[e.CourseID]; !ok {
		return apperrors.ErrUnknownReference
	}
	for _, existing := range s.db.enrollments {
		if existing.StudentID == e.StudentID && existing.CourseID == e.CourseID {
			return apperrors.ErrAlreadyEnrolled
		}
	}
	e.ID = s.db.next()
	e.CreatedAt = time.Now()
	s.db.enrollments[e.ID] = *e
	s.db.wrote("StudentCourses.Create")
	return nil
}

func (s memEnrollments) GetByID(ctx context.Context, id int64) (*models.StudentCourse, error) {
	e, ok := s.db.enrollments[id]
	if !ok {
		return nil, apperrors.ErrStudentCourseNotFound
	}
	return &e, nil
}

func (s memEnrollments) GetAll(ctx context.Context) ([]*models.StudentCourse, error) {
	return sortedValues(s.db.enrollments, nil), nil
}

func (s memEnrollments) GetByStudent(ctx context.Context, studentID int64) ([]*models.StudentCourse, error) {
	return sortedValues(s.db.enrollments, func(e models.StudentCourse) bool { return e.StudentID == studentID }), nil
}

func (s memEnrollments) StudentIDsByCourses(ctx context.Context, courseIDs []int64) ([]int64, error) {
	seen := map[int64]bool{}
	ids := []int64{}
	for _, e := range sortedValues(s.db.enrollments, nil) {
		if inSet(courseIDs, e.CourseID) && !seen[e.StudentID] {
			seen[e.StudentID] = true
			ids = append(ids, e.StudentID)
		}
	}
	return ids, nil
}

func (s memEnrollments) Delete(ctx context.Context, courseID, studentID int64) error {
	for k, e := range s.db.enrollments {
		if e.CourseID == courseID && e.StudentID == studentID {
			delete(s.db.enrollments, k)
			s.db.wrote("StudentCourses.Delete")
			return nil
		}
	}
	return apperrors.ErrStudentCourseNotFound
}

// --- availability ---

type memSlots struct{ db *memDB }

func (s memSlots) Create(ctx context.Context, a *models.Availability) error {
	if _, ok := s.db.students[a.StudentID]; !ok {
		return apperrors.ErrUnknownReference
	}
	a.ID = s.db.next()
	a.CreatedAt = time.Now()
	s.db.slots[a.ID] = *a
	s.db.wrote("Availability.Create")
	return nil
}

func (s memSlots) GetByID(ctx context.Context, id int64) (*models.Availability, error) {
	a, ok := s.db.slots[id]
	if !ok {
		return nil, apperrors.ErrAvailabilityNotFound
	}
	return &a, nil
}

func (s memSlots) GetAll(ctx context.Context) ([]*models.Availability, error) {
	return sortedValues(s.db.slots, nil), nil
}

func (s memSlots) GetByStudent(ctx context.Context, studentID int64) ([]*models.Availability, error) {
	return sortedValues(s.db.slots, func(a models.Availability) bool { return a.StudentID == studentID }), nil
}

func (s memSlots) Update(ctx context.Context, a *models.Availability) error {
	if _, ok := s.db.slots[a.ID]; !ok {
		return apperrors.ErrAvailabilityNotFound
	}
	s.db.slots[a.ID] = *a
	s.db.wrote("Availability.Update")
	return nil
}

func (s memSlots) Delete(ctx context.Context, id int64) error {
	if err := s.db.fail("Availability.Delete"); err != nil {
		return err
	}
	if _, ok := s.db.slots[id]; !ok {
		return apperrors.ErrAvailabilityNotFound
	}
	delete(s.db.slots, id)
	s.db.wrote("Availability.Delete")
	return nil
}

func (s memSlots) Claim(ctx context.Context, id int64) (*models.Availability, error) {
	if err := s.db.fail("Availability.Claim"); err != nil {
		return nil, err
	}
	a, ok := s.db.slots[id]
	if !ok {
		return nil, apperrors.ErrAvailabilityNotFound
	}
	delete(s.db.slots, id)
	s.db.wrote("Availability.Claim")
	return &a, nil
}

// --- requests ---

type memRequests struct{ db *memDB }

func (s memRequests) Create(ctx context.Context, r *models.Request) error {
	if err := s.db.fail("Requests.Create"); err != nil {
		return err
	}
	if _, ok := s.db.staff[r.StaffID]; !ok {
		return apperrors.ErrUnknownReference
	}
	if _, ok := s.db.students[r.StudentID]; !ok {
		return apperrors.ErrUnknownReference
	}
	r.ID = s.db.next()
	r.CreatedAt, r.UpdatedAt = time.Now(), time.Now()
	s.db.requests[r.ID] = *r
	s.db.wrote("Requests.Create")
	return nil
}

func (s memRequests) GetByID(ctx context.Context, id int64) (*models.Request, error) {
	if err := s.db.fail("Requests.GetByID"); err != nil {
		return nil, err
	}
	return s.load(id)
}

func (s memRequests) load(id int64) (*models.Request, error) {
	r, ok := s.db.requests[id]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	return &r, nil
}

func (s memRequests) GetByIDForUpdate(ctx context.Context, id int64) (*models.Request, error) {
	return s.load(id)
}

func (s memRequests) GetAll(ctx context.Context) ([]*models.Request, error) {
	return sortedValues(s.db.requests, nil), nil
}

func (s memRequests) GetByStudent(ctx context.Context, studentID int64) ([]*models.Request, error) {
	return sortedValues(s.db.requests, func(r models.Request) bool { return r.StudentID == studentID }), nil
}

func (s memRequests) GetByStaff(ctx context.Context, staffID int64) ([]*models.Request, error) {
	return sortedValues(s.db.requests, func(r models.Request) bool { return r.StaffID == staffID }), nil
}

func (s memRequests) Update(ctx context.Context, r *models.Request) error {
	existing, ok := s.db.requests[r.ID]
	if !ok {
		return apperrors.ErrRequestNotFound
	}
	existing.Title, existing.Message = r.Title, r.Message
	existing.UpdatedAt = time.Now()
	s.db.requests[r.ID] = existing
	s.db.wrote("Requests.Update")
	return nil
}

func (s memRequests) TransitionStatus(ctx context.Context, id int64, from, to models.RequestStatus) error {
	r, ok := s.db.requests[id]
	if !ok || r.Status != from {
		return apperrors.ErrInvalidStatusTransition
	}
	r.Status = to
	s.db.requests[id] = r
	s.db.wrote("Requests.TransitionStatus")
	return nil
}

func (s memRequests) SetRating(ctx context.Context, id int64, rating int, feedback *string) error {
	if err := s.db.fail("Requests.SetRating"); err != nil {
		return err
	}
	r, ok := s.db.requests[id]
	if !ok || r.Status != models.RequestApproved || r.Rating != nil {
		return apperrors.ErrRequestAlreadyRated
	}
	now := time.Now()
	r.Rating, r.Feedback, r.RatedAt = &rating, feedback, &now
	s.db.requests[id] = r
	s.db.wrote("Requests.SetRating")
	return nil
}

func (s memRequests) RatingsByStudent(ctx context.Context, studentID int64) ([]int, error) {
	if err := s.db.fail("Requests.RatingsByStudent"); err != nil {
		return nil, err
	}
	ratings := []int{}
	for _, r := range sortedValues(s.db.requests, nil) {
		if r.StudentID == studentID && r.Rating != nil {
			ratings = append(ratings, *r.Rating)
		}
	}
	return ratings, nil
}

func (s memRequests) RatedRequests(ctx context.Context, f repositories.LedgerFilter) ([]*models.Request, error) {
	rated := sortedValues(s.db.requests, func(r models.Request) bool {
		return r.Rating != nil &&
			(f.StudentID == nil || r.StudentID == *f.StudentID) &&
			(f.StaffID == nil || r.StaffID == *f.StaffID) &&
			(f.RequestID == nil || r.ID == *f.RequestID)
	})
	sort.SliceStable(rated, func(i, j int) bool { return rated[i].ID > rated[j].ID })
	return rated, nil
}

func (s memRequests) Delete(ctx context.Context, id int64) error {
	if _, ok := s.db.requests[id]; !ok {
		return apperrors.ErrRequestNotFound
	}
	delete(s.db.requests, id)
	s.db.wrote("Requests.Delete")
	return nil
}

var (
	_ DepartmentStore    = memDepartments{}
	_ ProgramStore       = memPrograms{}
	_ CourseStore        = memCourses{}
	_ AdminStore         = memAdmins{}
	_ StaffStore         = memStaff{}
	_ StudentStore       = memStudents{}
	_ AccountStore       = memAccounts{}
	_ SkillStore         = memSkills{}
	_ StudentCourseStore = memEnrollments{}
	_ AvailabilityStore  = memSlots{}
	_ RequestStore       = memRequests{}
	_ Transactor         = (*memTx)(nil)
)
