package store

import "gitlab.connectwisedev.com/coffee-service/models"

const (
	imageBase    = "https://trae-api-sg.mchost.guru/api/ide/v1/text_to_image?image_size=square&prompt="
	CategoryIcon = "☕"
)

// DefaultMenu is the catalog a fresh store starts with, before any load.
func DefaultMenu() []models.Product {
	return []models.Product{
		{ID: "1", Name: "美式咖啡", Description: "经典美式咖啡，香醇浓郁，回味悠长", Price: 25, Image: imageBase + "classic%20american%20coffee%20in%20white%20cup", Category: "经典咖啡", Rating: 4.5, IsHot: true},
		{ID: "2", Name: "拿铁咖啡", Description: "香浓牛奶与咖啡的完美融合，口感丝滑", Price: 32, Image: imageBase + "latte%20coffee%20with%20milk%20foam%20art", Category: "奶咖系列", Rating: 4.8, IsHot: true},
		{ID: "3", Name: "卡布奇诺", Description: "浓郁咖啡配上绵密奶泡，层次丰富", Price: 30, Image: imageBase + "cappuccino%20coffee%20with%20thick%20milk%20foam", Category: "奶咖系列", Rating: 4.6},
		{ID: "4", Name: "焦糖玛奇朵", Description: "香甜焦糖与浓郁咖啡的甜蜜邂逅", Price: 35, Image: imageBase + "caramel%20macchiato%20coffee", Category: "特色饮品", Rating: 4.7, IsNew: true},
		{ID: "5", Name: "摩卡咖啡", Description: "巧克力与咖啡的浪漫组合，甜而不腻", Price: 38, Image: imageBase + "mocha%20coffee%20with%20chocolate%20shavings", Category: "特色饮品", Rating: 4.9, IsHot: true},
		{ID: "6", Name: "蓝山咖啡", Description: "来自牙买加的顶级咖啡豆，酸味和香味均衡", Price: 45, Image: imageBase + "blue%20mountain%20coffee%20in%20porcelain%20cup", Category: "精品单品", Rating: 4.9, IsNew: true},
		{ID: "7", Name: "冰滴咖啡", Description: "低温长时间萃取，口感顺滑甘甜", Price: 36, Image: imageBase + "cold%20brew%20coffee%20in%20glass%20jug", Category: "冷萃系列", Rating: 4.7},
		{ID: "8", Name: "皇家咖啡", Description: "顶级蓝山咖啡加入特调酒液，火焰燃烧呈现", Price: 58, Image: imageBase + "royal%20coffee%20with%20flames", Category: "特色饮品", Rating: 5.0, IsNew: true},
	}
}

// FallbackCatalog replaces the catalog when a load fails, so the menu is
// never empty.
func FallbackCatalog() []models.Product {
	return []models.Product{DefaultMenu()[0]}
}
