package model

import "github.com/shopspring/decimal"

const unsplash = "https://images.unsplash.com/"

// DefaultCategories returns a fresh copy of the categories a new shop starts with.
func DefaultCategories() []Category {
	return []Category{
		{ID: "cat_soda", Name: "น้ำอัดลม", Image: unsplash + "photo-1622483767028-3f66f32aef97?auto=format&fit=crop&w=400&q=80"},
		{ID: "cat_liquor", Name: "เหล้า", Image: unsplash + "photo-1569701881644-83955f2f4581?auto=format&fit=crop&w=400&q=80"},
		{ID: "cat_beer", Name: "เบียร์", Image: unsplash + "photo-1535958636474-b021ee887b13?auto=format&fit=crop&w=400&q=80"},
		{ID: "cat_water", Name: "น้ำเปล่า", Image: unsplash + "photo-1548839140-29a749e1cf4d?auto=format&fit=crop&w=400&q=80"},
		{ID: CategoryIce, Name: "น้ำแข็ง", Image: unsplash + "photo-1516641397576-9d3c5b52541a?auto=format&fit=crop&w=400&q=80"},
		{ID: "cat_energy", Name: "เครื่องดื่มบำรุงกำลัง", Image: unsplash + "photo-1622543925917-763c34d1538c?auto=format&fit=crop&w=400&q=80"},
		{ID: "cat_cig", Name: "บุหรี่", Image: unsplash + "photo-1527137342181-19aab11a8ee1?auto=format&fit=crop&w=400&q=80"},
		{ID: "cat_other", Name: "อื่นๆ", Image: unsplash + "photo-1586528116311-ad8dd3c8310d?auto=format&fit=crop&w=400&q=80"},
		{ID: CategoryDebt, Name: "ลูกค้าค้าง", Image: unsplash + "photo-1554224155-1696413575a8?auto=format&fit=crop&w=400&q=80"},
	}
}

// DefaultProducts returns a fresh copy of the products a new shop starts with.
func DefaultProducts() []Product {
	return []Product{
		{ID: "p1", CategoryID: "cat_soda", Name: "โค้ก 325มล.", Price: decimal.NewFromInt(15), Unit: "กระป๋อง"},
		{ID: "p2", CategoryID: "cat_soda", Name: "เป๊ปซี่ 1.2ลิตร", Price: decimal.NewFromInt(30), Unit: "ขวด"},
		{ID: "p3", CategoryID: "cat_beer", Name: "เบียร์ลีโอ (ขวดใหญ่)", Price: decimal.NewFromInt(60), Unit: "ขวด"},
		{ID: "p4", CategoryID: "cat_water", Name: "น้ำดื่มคริสตัล 600มล.", Price: decimal.NewFromInt(7), Unit: "ขวด"},
		{ID: "p5", CategoryID: "cat_cig", Name: "กรองทิพย์", Price: decimal.NewFromInt(105), Unit: "ซอง"},
		{ID: "p_ice", CategoryID: CategoryIce, Name: "น้ำแข็งหลอด", Price: decimal.NewFromInt(40), Unit: "กระสอบ"},
	}
}

// PresetImage is a stock picture offered when creating a category.
type PresetImage struct {
	Name string
	URL  string
}

// PresetImages lists the pictures offered for new categories. The first one is the default.
var PresetImages = []PresetImage{
	{Name: "เครื่องดื่ม", URL: unsplash + "photo-1544145945-f904253d0c7b?auto=format&fit=crop&w=400&q=80"},
	{Name: "ขนม/ของกิน", URL: unsplash + "photo-15994906592b3-e3b9c07cf4f4?auto=format&fit=crop&w=400&q=80"},
	{Name: "ของใช้ในบ้าน", URL: unsplash + "photo-1583947215259-38e31be8751f?auto=format&fit=crop&w=400&q=80"},
	{Name: "ผัก/ผลไม้", URL: unsplash + "photo-1610832958506-aa56368176cf?auto=format&fit=crop&w=400&q=80"},
	{Name: "เครื่องเขียน", URL: unsplash + "photo-1583484963886-cfe2bef3183b?auto=format&fit=crop&w=400&q=80"},
	{Name: "น้ำแข็ง/แช่เย็น", URL: unsplash + "photo-1551326844-4df70f78d0e9?auto=format&fit=crop&w=400&q=80"},
	{Name: "ยา/เวชภัณฑ์", URL: unsplash + "photo-1584308666744-24d5c474f2ae?auto=format&fit=crop&w=400&q=80"},
	{Name: "อื่นๆ", URL: unsplash + "photo-1586528116311-ad8dd3c8310d?auto=format&fit=crop&w=400&q=80"},
}
