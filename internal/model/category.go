package model

// Category is one entry of the job category catalogue.
type Category struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// JobCategories is the fixed catalogue of job categories. Job postings
// must reference one of these values.
var JobCategories = []Category{
	{"Accounting / Finance", "accounting_finance", "Accountants, auditors, financial analysts."},
	{"Admin / Secretarial", "admin_secretarial", "Office assistants, executive secretaries, receptionists."},
	{"Advertising / Marketing / PR", "advertising_marketing_pr", "Digital marketers, brand managers, PR officers."},
	{"Agriculture / Agro-processing", "agriculture_agro_processing", "Agronomists, farm managers, food processing specialists."},
	{"Architecture / Construction", "architecture_construction", "Architects, civil engineers, site supervisors."},
	{"Automotive / Engineering", "automotive_engineering", "Mechanical, electrical, and automotive engineers."},
	{"Aviation / Airlines", "aviation_airlines", "Pilots, flight attendants, ground crew."},
	{"Banking / Insurance", "banking_insurance", "Bank officers, underwriters, risk analysts."},
	{"Business Development", "business_development", "Sales executives, account managers, lead generators."},
	{"Consulting / Strategy", "consulting_strategy", "Management consultants, business analysts, planners."},
	{"Creative / Arts / Media", "creative_arts_media", "Graphic designers, video editors, content creators."},
	{"Customer Service / Call Center", "customer_service_call_center", "Customer support agents, call center reps."},
	{"Driver / Logistics / Transport", "driver_logistics_transport", "Drivers, dispatchers, logistics coordinators."},
	{"Education / Teaching / Training", "education_teaching_training", "Teachers, trainers, education consultants."},
	{"Engineering / Manufacturing", "engineering_manufacturing", "Production engineers, quality control, technicians."},
	{"Government / NGO / Non-Profit", "government_ngo_nonprofit", "Policy advisors, program officers, humanitarian workers."},
	{"Healthcare / Medical", "healthcare_medical", "Doctors, nurses, lab techs, pharmacists."},
	{"Hospitality / Hotel / Travel", "hospitality_hotel_travel", "Hotel managers, waiters, tour guides, front desk."},
	{"Human Resource / Recruitment", "human_resource_recruitment", "HR officers, recruiters, talent managers."},
	{"ICT / Telecom / IT", "ict_telecom_it", "Developers, IT support, network engineers, cybersecurity."},
	{"Legal / Law", "legal_law", "Lawyers, legal assistants, compliance officers."},
	{"Maintenance / Technical", "maintenance_technical", "Electricians, plumbers, HVAC technicians."},
	{"Manufacturing / Operations", "manufacturing_operations", "Factory operators, machine supervisors."},
	{"Procurement / Purchasing", "procurement_purchasing", "Procurement officers, buyers, supply chain managers."},
	{"Real Estate / Property", "real_estate_property", "Property agents, real estate managers."},
	{"Research / Science", "research_science", "Lab scientists, research assistants, data analysts."},
	{"Retail / Sales / Merchandising", "retail_sales_merchandising", "Sales reps, merchandisers, store managers."},
	{"Security / Military", "security_military", "Security guards, military personnel, risk assessors."},
	{"Social Sciences / Social Work", "social_sciences_social_work", "Sociologists, social workers, community organizers."},
	{"Textile / Garment / Fashion", "textile_garment_fashion", "Fashion designers, tailors, production supervisors."},
	{"Tourism / Travel / Leisure", "tourism_travel_leisure", "Tour operators, travel agents, event planners."},
	{"Warehouse / Inventory", "warehouse_inventory", "Storekeepers, inventory clerks, warehouse managers."},
}

// ValidJobCategory reports whether value is part of the catalogue.
func ValidJobCategory(value string) bool {
	for _, c := range JobCategories {
		if c.Value == value {
			return true
		}
	}
	return false
}
