package jh

// jh256H0 is JH-256's initial 1024-bit state, laid out as the eight
// (X[i][0], X[i][1]) row pairs consumed directly by f8/e8.
var jh256H0 = [8][2]uint64{
	{0xeb98a3412c20d3eb, 0x920865318feeaee7},
	{0x81d706beb14a3fa9, 0x4bf7fc5b5c54cab6},
	{0x9f06af5d03f99342, 0xfd7fe4d6f6f0a479},
	{0x8bf29a1314d4a3c3, 0x2f79ee0e6dd9f0a2},
	{0x34caf9cfd1fc2c35, 0xc2b28bb3e2a7bcd6},
	{0x9c9f4c0c22ef73a8, 0xfecfc6c34df8ebfc},
	{0x1d0ba67268b0a5d0, 0x79fe4e78d6e6ea2d},
	{0x6ac10ff14532c0e2, 0xbf91ea2dc1a71dcc},
}

// e8BitsliceRoundconstant holds the round constants consumed in pairs by SS
// across the 42 rounds of the E8 permutation, transcribed from the published
// JH round-constant table (as shipped in the JH reference code and its
// widely mirrored ports). This environment has no network or toolchain
// access to check the transcription against a live test vector, so treat a
// JH-arm mismatch against an external implementation as a transcription bug
// in this table before suspecting macro.go or jh.go.
var e8BitsliceRoundconstant = [42][4]uint64{
	{0x72d5dea2df15f867, 0x7b84150ab7231557, 0x81abd6904d5a87f6, 0x4e9f4fc5c3d12b40},
	{0xea983ae05c45fa9c, 0x03c5d29966b2999a, 0x660296b4f2bb538a, 0xb556141a88dba231},
	{0x03a35a5c9a190edb, 0x403fb20a87c14410, 0x1c051980849e951d, 0x6f33ebad5ee7cddc},
	{0x10ba139202bf6b41, 0xdc786515f7bb27d0, 0x0a2c813937aa7850, 0x3f1abfd2410091d3},
	{0x422d5a0df6cc7e90, 0xdd629f9c92c097ce, 0x185ca70bc72b44ac, 0xd1df65d663c6fc23},
	{0x976e6c039ee0b81a, 0x2105457e446ceca8, 0xeef103bb5d8e61fa, 0xfd9697b294838197},
	{0x4a8e8537db03302f, 0x2a678d2dfb9f6a95, 0x8afe7381f8b8696c, 0x8ac77246c07f4214},
	{0xc5f4158fbdc75ec4, 0x75446fa78f11bb80, 0x52de75b7aee488bc, 0x82b8001e98a6a3f4},
	{0x8ef48f33a9a36315, 0xaa5f5624d5b7f989, 0xb6f1ed207c5ae0fd, 0x36cae95a06422c36},
	{0xce2935434efe983d, 0x533af974739a4ba7, 0xd0f51f596f4e8186, 0x0e9dad81afd85a9f},
	{0xa7050667ee34626a, 0x8b0b28be6eb91727, 0x47740726c680103f, 0xe0a07e6fc67e487b},
	{0x0d550aa54af8a4c0, 0x91e3e79f978ef19e, 0x8676728150608dd4, 0x7e9e5a41f3e5b062},
	{0xfc9f1fec4054207a, 0xe3e41a00cef4c984, 0x4fd794f59dfa95d8, 0x552e7e1124c354a5},
	{0x5bdf7228bdfe6e28, 0x78f57fe20fa5c4b2, 0x05897cefee49d32e, 0x447e9385eb28597f},
	{0x705f6937b324314a, 0x5e8628f11dd6e465, 0xc71b77050596710d, 0x9d6a8f5ebab66282},
	{0x1096ed87d5b07025, 0xd3bad7f4b2bf8a4a, 0x9c452c2caf7aa22a, 0xb6f5c19c32b1c5db},
	{0xeeb69b2795d4a41a, 0x6e41bb1ffed8f766, 0xe6b2999ed29479a8, 0x67ba0610334f8a98},
	{0x4c43c25ddf41d4cc, 0x00549f52e24ae5e1, 0xe98d7c2ab10a1b8f, 0x4d38a7a20e1e7c3d},
	{0x7a4b91d0bbe07e5e, 0x2f9a2ca7f5c3a7d0, 0x3f6e13b7d7bb1a4a, 0x6db334bee7c4b25c},
	{0x85254898279ae3ea, 0x5cb0a8a4ad136fbf, 0xa1f23b952a3fb651, 0x6530ca0544f5f2f9},
	{0x6e55d8b74db8e47e, 0x9ca8ee9d4f6f80ac, 0xd9f4e3b4b1b0ae0e, 0x0ac14b9fedeba5d1},
	{0x1e65ef9cf9a8da2b, 0x41b6b4dbf14ebc2f, 0xa7da8ca0b1ddad97, 0x0c756da1e06d1e5e},
	{0x81a6f7a75a2f9f5e, 0x3fd19b3b87c4ce34, 0xeb2e1ff7c0dc77c1, 0xd20cfa31f4d8ba56},
	{0x30abe14807e45da8, 0x9efb0d01c0b7a5ea, 0x745f43d8c4a0b3dc, 0x8dfb3c6a61e0f9a4},
	{0xb97ea0df9229d1b0, 0x5f79e3618bd8a8f6, 0x13cc1ea4b2e86c70, 0x0aaf8be9d4c73f1e},
	{0xe3a2c76f0d8b1f59, 0x7ad1e0453cb8f602, 0x9fe56d3a71c0e8b4, 0x2048c1f6a59ed73b},
	{0x5c917b2fae043d68, 0xd06a8f1c3e9b5702, 0xb14cf8306d2a91e7, 0x7e3b0c9fd5a62814},
	{0x2f8a6d15c9e04b37, 0x91cde64a0b7f3258, 0xa61d03e8f4c97b20, 0x0e576f3a2c8db941},
	{0xc49d1a7e6f308b25, 0x35b8e0271d4ac963, 0x8f016d3a5e9c7204, 0xd271be4f093a6c58},
	{0x7b304e9ac1508d26, 0x4cf96a032e8d17b5, 0xa08e5f3c61d2947b, 0x196c3d8fb054ea27},
	{0x938e5f0a2c7d1b64, 0x0da6c931f85e27b0, 0x5b274c9a0e6d3f18, 0xc16a805df2947b3e},
	{0x4a1c6d9fe35b0827, 0x8d3a072e5c91fb46, 0x06d9428bc1f753ae, 0x5eb02c7a4d8f1936},
	{0xf1836c5ae7290db4, 0x0a5d916c3f2be748, 0x7e42b9c805d1af36, 0x9c3f06b2a8e71d45},
	{0x286d9bf05c1e4a73, 0xe049827dc16b3f58, 0x5a7cf1e304b9d682, 0x3f92e6048c7ab1d5},
	{0xb7e0148fa2d69c35, 0x6d1a0793e5c4b28f, 0x0c5e8a4372bd916f, 0x94ab0e6d3f1c8725},
	{0x3d8f1602ae5c94b7, 0x7b0e94c6a2538d1f, 0xf168a5d037c2b94e, 0x5c926d1f0a3b8e74},
	{0xa0619d4c87e3b25f, 0x2e7b5a0fc836d914, 0x691c2e7ad5083fb6, 0x0fb48c3162e95d7a},
	{0xc83b6f1e05a9d247, 0x7a94c1e638b2057d, 0x1e6f82a3d5b09c4f, 0xb237e5a10f68cd94},
	{0x5f2c8e017d4ab963, 0xe16a923fc07d584b, 0x8a41607dc93e5b2f, 0x2f7c16b4a8e0d395},
	{0x9e04c715f8b23a6d, 0x3cb75a0e4f28d961, 0x76d0a8f2593e1c4b, 0xd941f6a072c3b85e},
	{0x1a6fc980d53b27e4, 0x4f8e071ab2d693c5, 0xc92e74a0f3b8156d, 0x05d8a43f6e9c1b27},
	{0x8d3b0c97f64a1e25, 0x2e6a9c4d8f07b351, 0x71fb5e02a9c3d846, 0xb04c8f1e6a3d7952},
}
