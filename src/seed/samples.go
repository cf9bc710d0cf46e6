package seed

type sample struct {
	Name          string
	Details       string
	LocationFound string
	DateFound     string
	Length        string
	HeightDepth   string
	Width         string
}

var samples = []sample{
	{
		Name:          "Neolithic Stone Axe Head",
		Details:       "A well-preserved polished stone axe head from the Neolithic period, dating approximately 4000-2500 BCE. Made from fine-grained flint with evidence of deliberate shaping and polishing. This artifact represents early agricultural technology and stone tool craftsmanship. Found with remnants of a wooden haft attached, showing advanced composite tool construction.",
		LocationFound: "Excavation Site Alpha, Grid 7B, Layer 3",
		DateFound:     "2023-05-15",
		Length:        "18 cm",
		HeightDepth:   "4 cm",
		Width:         "6 cm",
	},
	{
		Name:          "Roman Bronze Coin - Denarius",
		Details:       "Silver denarius coin minted during the reign of Emperor Augustus (27 BCE - 14 CE). Obverse features portrait of Augustus with laurel wreath, reverse shows military standards. Coin shows moderate wear consistent with circulation. Important numismatic evidence for Roman trade networks and imperial iconography during the early Empire.",
		LocationFound: "Roman Settlement Site, Trench 12, Context 45",
		DateFound:     "2023-06-22",
		Length:        "1.9 cm",
		HeightDepth:   "0.2 cm",
		Width:         "1.9 cm",
	},
	{
		Name:          "Ancient Egyptian Scarab Amulet",
		Details:       "Carved faience scarab beetle amulet from the New Kingdom period (c. 1550-1070 BCE). Hieroglyphic inscription on the base reads \"may the heart not testify against me.\" Green-blue glazed surface with intricate detailing on the beetle's wings and legs. Scarabs were protective amulets and symbols of rebirth in ancient Egyptian religion.",
		LocationFound: "Valley of the Kings, Tomb KV-15, Burial Chamber",
		DateFound:     "2023-03-10",
		Length:        "3.5 cm",
		HeightDepth:   "1.2 cm",
		Width:         "2.1 cm",
	},
	{
		Name:          "Mesopotamian Cuneiform Tablet",
		Details:       "Clay tablet inscribed with cuneiform script from the Babylonian period (c. 1900-1600 BCE). Contains administrative records detailing grain distribution. Tablet measures 8cm x 5cm, well-preserved with clear wedge-shaped impressions. Provides valuable insight into early accounting systems and economic practices in ancient Mesopotamia.",
		LocationFound: "Tell el-Amarna, Administrative Quarter, Room B",
		DateFound:     "2023-07-18",
		Length:        "8 cm",
		HeightDepth:   "2 cm",
		Width:         "5 cm",
	},
	{
		Name:          "Greek Red-Figure Pottery Fragment",
		Details:       "Fragment from an Attic red-figure kylix (wine cup) dating to the late 6th century BCE. Depicts scene from Greek mythology showing a satyr and maenad. The red-figure technique involved painting figures in slip that turned red when fired, leaving the background black. This fragment demonstrates exceptional artistic skill and provides insight into Greek drinking culture and mythology.",
		LocationFound: "Athenian Agora, Building Complex A, Floor Deposit",
		DateFound:     "2023-04-05",
		Length:        "12 cm",
		HeightDepth:   "0.6 cm",
		Width:         "8 cm",
	},
	{
		Name:          "Viking Age Silver Brooch",
		Details:       "Tortoise brooch (penannular brooch) made of silver with intricate zoomorphic designs. Dating to the 10th century CE, this artifact was used to fasten women's garments in Viking culture. Features stylized animal heads and interlace patterns typical of Norse art. Silver content suggests high status of the owner. Excellent preservation with original pin mechanism intact.",
		LocationFound: "Jorvik Viking Settlement, House 23, Woman's Burial",
		DateFound:     "2023-08-12",
		Length:        "9 cm",
		HeightDepth:   "2.5 cm",
		Width:         "6.5 cm",
	},
	{
		Name:          "Chinese Bronze Ritual Vessel - Ding",
		Details:       "Bronze tripod cauldron (ding) from the Shang Dynasty (c. 1600-1046 BCE). Decorated with taotie (monster mask) motifs and geometric patterns characteristic of Shang bronze work. The ding was used for cooking and serving food in ritual ceremonies. Inscriptions indicate it belonged to a noble family. Demonstrates advanced bronze casting techniques and hierarchical social structure.",
		LocationFound: "Anyang Archaeological Site, Royal Cemetery M1001",
		DateFound:     "2023-02-28",
		Length:        "36 cm",
		HeightDepth:   "32 cm",
		Width:         "28 cm",
	},
	{
		Name:          "Mayan Ceramic Figurine",
		Details:       "Hollow ceramic figurine depicting a seated dignitary from the Classic Maya period (c. 250-900 CE). Features detailed facial features, elaborate headdress, and ceremonial regalia. The figurine likely represents a ruler or high-ranking noble. Painted decoration includes red, black, and cream pigments. Provides insight into Maya social hierarchy, religious beliefs, and ceramic production techniques.",
		LocationFound: "Tikal Site, Temple I Complex, Offering Cache",
		DateFound:     "2023-09-20",
		Length:        "14 cm",
		HeightDepth:   "18 cm",
		Width:         "10 cm",
	},
	{
		Name:          "Medieval Illuminated Manuscript Fragment",
		Details:       "Parchment fragment from a 12th-century illuminated manuscript, likely a psalter. Features Latin text in Carolingian minuscule script with decorated initial letter. The illumination shows typical Romanesque style with geometric patterns and stylized foliage. Gold leaf application indicates this was a luxury manuscript. Fragment measures 15cm x 12cm and provides evidence of monastic scriptorium practices.",
		LocationFound: "Cloister Archive, Library Deposit, Shelf 3",
		DateFound:     "2023-10-08",
		Length:        "15 cm",
		HeightDepth:   "0.1 cm",
		Width:         "12 cm",
	},
	{
		Name:          "Indus Valley Seal",
		Details:       "Square steatite seal with unicorn motif from the Harappan Civilization (c. 2600-1900 BCE). Carved in negative relief, designed to make impressions in clay. Reverse features a short inscription in Indus script (undeciphered). The unicorn is the most common motif on Indus seals. This artifact was likely used for trade, ownership marking, or administrative purposes in one of the world's earliest urban civilizations.",
		LocationFound: "Mohenjo-daro Site, Lower Town, Street 9, House 15",
		DateFound:     "2023-11-15",
		Length:        "4 cm",
		HeightDepth:   "1.2 cm",
		Width:         "4 cm",
	},
}
