// Copyright 2024 dpickhq
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"github.com/dpickhq/dpick/internal/developer/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type DeveloperReq struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experienceYears"`
	Level           string   `json:"level"`
	Type            string   `json:"type"`

	CurrentProjects   []int64 `json:"currentProjects"`
	ProjectStartDate  string  `json:"projectStartDate"`
	ProjectEndDate    string  `json:"projectEndDate"`
	NextProjects      []int64 `json:"nextProjects"`
	ExpectedStartDate string  `json:"expectedStartDate"`

	PaymentDate    string `json:"paymentDate"`
	ExpectedSalary int64  `json:"expectedSalary"`
	PaymentStatus  string `json:"paymentStatus"`
}

func (req DeveloperReq) toDomain(id int64) domain.Developer {
	return domain.Developer{
		Id:                id,
		Name:              req.Name,
		BirthDate:         req.BirthDate,
		Email:             req.Email,
		Phone:             req.Phone,
		Skills:            req.Skills,
		ExperienceYears:   req.ExperienceYears,
		Level:             domain.Level(req.Level),
		Type:              domain.Type(req.Type),
		CurrentProjects:   req.CurrentProjects,
		ProjectStartDate:  req.ProjectStartDate,
		ProjectEndDate:    req.ProjectEndDate,
		NextProjects:      req.NextProjects,
		ExpectedStartDate: req.ExpectedStartDate,
		PaymentDate:       req.PaymentDate,
		ExpectedSalary:    req.ExpectedSalary,
		PaymentStatus:     domain.PaymentStatus(req.PaymentStatus),
	}
}

type Developer struct {
	Id int64  `json:"id"`
	SN string `json:"sn"`

	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experienceYears"`
	Level           string   `json:"level"`
	Type            string   `json:"type"`

	CurrentProjects   []int64 `json:"currentProjects"`
	ProjectStartDate  string  `json:"projectStartDate,omitempty"`
	ProjectEndDate    string  `json:"projectEndDate,omitempty"`
	NextProjects      []int64 `json:"nextProjects"`
	ExpectedStartDate string  `json:"expectedStartDate,omitempty"`

	PaymentDate    string `json:"paymentDate,omitempty"`
	ExpectedSalary int64  `json:"expectedSalary"`
	PaymentStatus  string `json:"paymentStatus"`

	Contacts []Contact `json:"contacts,omitempty"`
	Resumes  []Resume  `json:"resumes,omitempty"`

	Utime int64 `json:"utime"`
}

func newDeveloper(d domain.Developer) Developer {
	return Developer{
		Id:                d.Id,
		SN:                d.SN,
		Name:              d.Name,
		BirthDate:         d.BirthDate,
		Email:             d.Email,
		Phone:             d.Phone,
		Skills:            d.Skills,
		ExperienceYears:   d.ExperienceYears,
		Level:             string(d.Level),
		Type:              string(d.Type),
		CurrentProjects:   d.CurrentProjects,
		ProjectStartDate:  d.ProjectStartDate,
		ProjectEndDate:    d.ProjectEndDate,
		NextProjects:      d.NextProjects,
		ExpectedStartDate: d.ExpectedStartDate,
		PaymentDate:       d.PaymentDate,
		ExpectedSalary:    d.ExpectedSalary,
		PaymentStatus:     string(d.PaymentStatus),
		Contacts: slice.Map(d.Contacts, func(idx int, src domain.Contact) Contact {
			return newContact(src)
		}),
		Resumes: slice.Map(d.Resumes, func(idx int, src domain.Resume) Resume {
			return newResume(src)
		}),
		Utime: d.Utime,
	}
}

type ContactReq struct {
	ContactDate string `json:"contactDate"`
	Memo        string `json:"memo"`
}

type Contact struct {
	Id          int64  `json:"id"`
	ContactDate string `json:"contactDate"`
	Memo        string `json:"memo"`
}

func newContact(c domain.Contact) Contact {
	return Contact{
		Id:          c.Id,
		ContactDate: c.ContactDate,
		Memo:        c.Memo,
	}
}

type ResumeReq struct {
	Title      string `json:"title"`
	FilePath   string `json:"filePath"`
	UploadDate string `json:"uploadDate"`
}

type ReviewReq struct {
	Status   string `json:"status"`
	Comments string `json:"comments"`
}

type Resume struct {
	Id          int64  `json:"id"`
	DeveloperId int64  `json:"developerId"`
	Title       string `json:"title"`
	FilePath    string `json:"filePath"`
	UploadDate  string `json:"uploadDate"`
	Status      string `json:"status"`
	Comments    string `json:"comments,omitempty"`
	ReviewedBy  int64  `json:"reviewedBy,omitempty"`
	ReviewedAt  int64  `json:"reviewedAt,omitempty"`
}

func newResume(r domain.Resume) Resume {
	return Resume{
		Id:          r.Id,
		DeveloperId: r.DeveloperId,
		Title:       r.Title,
		FilePath:    r.FilePath,
		UploadDate:  r.UploadDate,
		Status:      string(r.Review.Status),
		Comments:    r.Review.Comments,
		ReviewedBy:  r.Review.ReviewedBy,
		ReviewedAt:  r.Review.ReviewedAt,
	}
}
