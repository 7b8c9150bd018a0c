package store

import (
	"fmt"

	"github.com/orgbudget/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// seedYear is the fiscal year of all sample budgets.
const seedYear = 2024

// seedSplit is the share of a team budget that goes to each budget category,
// in category display order.
var seedSplit = []decimal.Decimal{
	decimal.RequireFromString("0.30"),
	decimal.RequireFromString("0.20"),
	decimal.RequireFromString("0.15"),
	decimal.RequireFromString("0.20"),
	decimal.RequireFromString("0.15"),
}

type seedTeam struct {
	name   string
	amount int64
}

type seedManager struct {
	name  string
	teams []seedTeam
}

type seedDepartment struct {
	name     string
	head     string
	budget   int64
	managers []seedManager
}

var seedDepartments = []seedDepartment{
	{
		name:   "Engineering",
		head:   "Michael Chen",
		budget: 2000000,
		managers: []seedManager{
			{"Alex Kumar", []seedTeam{{"Frontend Development", 600000}, {"Backend Development", 700000}}},
			{"Maria Garcia", []seedTeam{{"Mobile Development", 400000}, {"DevOps", 300000}}},
		},
	},
	{
		name:   "Product Management",
		head:   "Emily Rodriguez",
		budget: 1000000,
		managers: []seedManager{
			{"John Smith", []seedTeam{{"Core Product", 600000}, {"Enterprise Solutions", 400000}}},
		},
	},
	{
		name:   "Design",
		head:   "David Kim",
		budget: 800000,
		managers: []seedManager{
			{"Sophie Lee", []seedTeam{{"UX Design", 300000}, {"UI Design", 250000}}},
			{"Marcus Johnson", []seedTeam{{"Brand Design", 250000}}},
		},
	},
	{
		name:   "Operations",
		head:   "Lisa Thompson",
		budget: 700000,
		managers: []seedManager{
			{"Rachel Green", []seedTeam{{"Infrastructure", 400000}}},
			{"Daniel Martinez", []seedTeam{{"Security", 300000}}},
		},
	},
	{
		name:   "Customer Success",
		head:   "James Wilson",
		budget: 500000,
		managers: []seedManager{
			{"Emma Watson", []seedTeam{{"Customer Support", 300000}, {"Customer Onboarding", 200000}}},
		},
	},
}

// Seed creates the sample organization with its departments, managers,
// teams and budgets. It does nothing if any organization exists already.
//
// All records are created in one transaction. The returned bool is true when
// the sample data was created.
func (s *Store) Seed() (bool, error) {
	created := false

	err := s.transaction(func(tx *Store) error {
		var count int64
		err := tx.db.Model(&models.Organization{}).Count(&count).Error
		if err != nil {
			return err
		}

		if count > 0 {
			return nil
		}

		categories, err := tx.BudgetCategories()
		if err != nil {
			return err
		}

		if len(categories) < len(seedSplit) {
			return fmt.Errorf("expected %d budget categories, found %d", len(seedSplit), len(categories))
		}

		organization, err := tx.AddOrganization(models.Organization{
			Name:        "SampleTestOrg",
			LeaderName:  "Sarah Anderson",
			TotalBudget: decimal.NewFromInt(5000000),
		})
		if err != nil {
			return err
		}

		for _, d := range seedDepartments {
			department, err := tx.AddDepartment(models.Department{
				OrganizationID:     organization.ID,
				Name:               d.name,
				DepartmentHeadName: d.head,
				TotalBudget:        decimal.NewFromInt(d.budget),
			})
			if err != nil {
				return err
			}

			for _, m := range d.managers {
				manager, err := tx.AddManager(models.Manager{
					DepartmentID: department.ID,
					Name:         m.name,
				})
				if err != nil {
					return err
				}

				for _, t := range m.teams {
					err := tx.seedTeam(manager, t, categories)
					if err != nil {
						return err
					}
				}
			}
		}

		created = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("error seeding sample data: %w", err)
	}

	if created {
		log.Info().Str("component", "seed").Msg("created sample data")
	}

	return created, nil
}

// seedTeam creates a team with a linked budget that is split over the
// categories.
func (s *Store) seedTeam(manager models.Manager, t seedTeam, categories []models.BudgetCategory) error {
	team, err := s.AddTeam(models.Team{
		ManagerID: manager.ID,
		Name:      t.name,
	})
	if err != nil {
		return err
	}

	total := decimal.NewFromInt(t.amount)
	budget, err := s.AddBudget(models.Budget{
		TeamID:      team.ID,
		TotalAmount: total,
		Year:        seedYear,
	})
	if err != nil {
		return err
	}

	_, err = s.UpdateTeamBudget(team.ID, budget.ID)
	if err != nil {
		return err
	}

	for i, share := range seedSplit {
		_, _, err := s.AddBudgetItem(models.BudgetItem{
			BudgetID:         budget.ID,
			BudgetCategoryID: categories[i].ID,
			Amount:           total.Mul(share),
			Description:      fmt.Sprintf("Budget allocation for %s", categories[i].Name),
		})
		if err != nil {
			return err
		}
	}

	return nil
}
